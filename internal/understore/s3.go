/*
   Licensed under the MIT License <http://opensource.org/licenses/MIT>.

   Copyright © 2023-2026 TierStore Project Contributors

   Permission is hereby granted, free of charge, to any person obtaining a copy
   of this software and associated documentation files (the "Software"), to deal
   in the Software without restriction, including without limitation the rights
   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
   copies of the Software, and to permit persons to whom the Software is
   furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in all
   copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
   SOFTWARE
*/

package understore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tierstore/tierstore/common/log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Conf keys recognized from the tier directory configuration. Keys follow
// the usual fs.s3 convention so worker-provided dir configs map straight in.
const (
	confKeyAccessKey = "fs.s3.accessKeyId"
	confKeySecretKey = "fs.s3.secretKey"
	confKeyRegion    = "fs.s3.region"
	confKeyEndpoint  = "fs.s3.endpoint"
)

// s3Store implements UnderStore against an S3 endpoint. Directories are
// zero-byte marker objects with a trailing slash, the common convention
// for object stores that have no directories of their own.
type s3Store struct {
	awsS3Client *s3.Client
}

func newS3Store(conf map[string]string) (*s3Store, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error

	if region := conf[confKeyRegion]; region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	if accessKey := conf[confKeyAccessKey]; accessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, conf[confKeySecretKey], ""),
		))
	}

	defaultConfig, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		log.Err("s3Store::newS3Store : Failed to load S3 config [%v]", err)
		return nil, err
	}

	var clientOpts []func(*s3.Options)
	if endpoint := conf[confKeyEndpoint]; endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return &s3Store{
		awsS3Client: s3.NewFromConfig(defaultConfig, clientOpts...),
	}, nil
}

func (st *s3Store) Name() string {
	return "s3"
}

// splitPath breaks s3://bucket/key/parts into bucket and key
func splitPath(path string) (string, string, error) {
	trimmed := strings.TrimPrefix(path, "s3://")
	if trimmed == path {
		return "", "", fmt.Errorf("understore: not an s3 path [%s]", path)
	}
	bucket, key, _ := strings.Cut(trimmed, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("understore: no bucket in path [%s]", path)
	}
	return bucket, key, nil
}

func (st *s3Store) headObject(bucket string, key string) (bool, error) {
	_, err := st.awsS3Client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (st *s3Store) Exists(path string) (bool, error) {
	bucket, key, err := splitPath(path)
	if err != nil {
		return false, err
	}
	if key == "" {
		// bare bucket, existence is the bucket's
		_, err = st.awsS3Client.HeadBucket(context.Background(), &s3.HeadBucketInput{
			Bucket: aws.String(bucket),
		})
		return err == nil, nil
	}

	found, err := st.headObject(bucket, key)
	if err != nil || found {
		return found, err
	}
	// retry as a directory marker
	return st.headObject(bucket, strings.TrimSuffix(key, "/")+"/")
}

func (st *s3Store) IsFile(path string) (bool, error) {
	bucket, key, err := splitPath(path)
	if err != nil {
		return false, err
	}
	if key == "" || strings.HasSuffix(key, "/") {
		return false, nil
	}
	return st.headObject(bucket, key)
}

func (st *s3Store) MkdirAll(path string) error {
	bucket, key, err := splitPath(path)
	if err != nil {
		return err
	}
	if key == "" {
		return nil
	}

	key = strings.TrimSuffix(key, "/") + "/"
	log.Trace("s3Store::MkdirAll : creating marker %s in bucket %s", key, bucket)
	_, err = st.awsS3Client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader([]byte{}),
	})
	if err != nil {
		log.Err("s3Store::MkdirAll : Failed to create marker %s [%v]", key, err)
	}
	return err
}
