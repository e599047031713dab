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

package client

import (
	"errors"
	"testing"

	"github.com/tierstore/tierstore/internal/rpc"

	"go.uber.org/mock/gomock"
)

const (
	testAddress = "direct://localhost:19998"
	testUserID  = int64(7)
)

// testTransport hands the gomock clients to the session and counts dials
// so tests can assert channel reuse
type testTransport struct {
	master rpc.MasterClient
	worker rpc.WorkerClient

	masterDials int
	workerDials int
}

func (t *testTransport) Name() string {
	return "test"
}

func (t *testTransport) DialMaster(_ rpc.NetAddress) (rpc.MasterClient, error) {
	if t.master == nil {
		return nil, errors.New("no master in test transport")
	}
	t.masterDials++
	return t.master, nil
}

func (t *testTransport) DialWorker(_ rpc.NetAddress) (rpc.WorkerClient, error) {
	if t.worker == nil {
		return nil, errors.New("no worker in test transport")
	}
	t.workerDials++
	return t.worker, nil
}

// testClient bundles a session with its mocked cluster
type testClient struct {
	session   *Session
	master    *rpc.MockMasterClient
	worker    *rpc.MockWorkerClient
	transport *testTransport
}

func newTestClient(t *testing.T) *testClient {
	ctrl := gomock.NewController(t)
	tc := &testClient{
		master: rpc.NewMockMasterClient(ctrl),
		worker: rpc.NewMockWorkerClient(ctrl),
	}
	tc.transport = &testTransport{master: tc.master, worker: tc.worker}

	session, err := NewWithTransport(Options{Address: testAddress}, tc.transport)
	if err != nil {
		t.Fatalf("session setup failed: %v", err)
	}
	tc.session = session
	return tc
}

// expectConnectLocalWorker registers the call sequence of a connect that
// attaches a local worker
func (tc *testClient) expectConnectLocalWorker() {
	tc.master.EXPECT().Connect().Return(nil)
	tc.master.EXPECT().GetUserID().Return(testUserID, nil)
	tc.master.EXPECT().GetWorker(gomock.Any(), gomock.Any()).
		Return(&rpc.NetAddress{Host: "localhost", Port: 29998}, nil)
	tc.worker.EXPECT().Open().Return(nil)
	tc.worker.EXPECT().DataRoot().Return("/mnt/tierstore", nil)
	tc.worker.EXPECT().UserTempPath(testUserID).Return("/mnt/tierstore/users/7", nil)
	tc.worker.EXPECT().UserUnderStoreTempPath(testUserID).Return("/under/users/7", nil)
}

// expectConnectNoWorker registers a connect where the master has no
// worker to offer
func (tc *testClient) expectConnectNoWorker() {
	tc.master.EXPECT().Connect().Return(nil)
	tc.master.EXPECT().GetUserID().Return(testUserID, nil)
	tc.master.EXPECT().GetWorker(gomock.Any(), gomock.Any()).
		Return(nil, rpc.ErrNoWorker).MinTimes(1).MaxTimes(2)
}
