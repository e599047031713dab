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

package cmd

import (
	"fmt"

	"github.com/tierstore/tierstore/client"

	"github.com/spf13/cobra"
)

// The fs command group is a thin shell over one session; all protocol
// logic lives in the client package.

var (
	fsRecursive bool
	fsUnpin     bool
)

var fsCmd = &cobra.Command{
	Use:               "fs",
	Short:             "Run filesystem operations against the cluster",
	FlagErrorHandling: cobra.ExitOnError,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("missing fs subcommand\n\nRun 'tierstore fs --help' for usage")
	},
}

// withSession runs fn against a fresh session and tears it down after
func withSession(fn func(*client.Session) error) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	defer session.Close()
	return fn(session)
}

var fsLsCmd = &cobra.Command{
	Use:   "ls <path>",
	Short: "List the paths under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(session *client.Session) error {
			paths, err := session.Ls(args[0], fsRecursive)
			if err != nil {
				return err
			}
			if paths == nil {
				return fmt.Errorf("%s does not exist", args[0])
			}
			for _, path := range paths {
				fmt.Println(path)
			}
			return nil
		})
	},
}

var fsStatCmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "Print a file's descriptor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(session *client.Session) error {
			info, err := session.FileInfoByPath(args[0], false)
			if err != nil {
				return err
			}
			if info == nil {
				return fmt.Errorf("%s does not exist", args[0])
			}
			fmt.Println("id:", info.ID)
			fmt.Println("path:", info.Path)
			fmt.Println("length:", info.Length)
			fmt.Println("block size:", info.BlockSizeBytes)
			fmt.Println("blocks:", len(info.BlockIDs))
			fmt.Println("directory:", info.IsDir)
			fmt.Println("complete:", info.IsComplete)
			fmt.Println("pinned:", info.IsPinned)
			fmt.Println("in memory:", fmt.Sprintf("%d%%", info.InMemoryPct))
			if info.StorePath != "" {
				fmt.Println("store path:", info.StorePath)
			}
			return nil
		})
	},
}

var fsMkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a directory and any missing parents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(session *client.Session) error {
			ok, err := session.Mkdir(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("failed to create %s", args[0])
			}
			return nil
		})
	},
}

var fsRmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a file or directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(session *client.Session) error {
			ok, err := session.DeletePath(args[0], fsRecursive)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("failed to delete %s", args[0])
			}
			return nil
		})
	},
}

var fsMvCmd = &cobra.Command{
	Use:   "mv <src> <dst>",
	Short: "Move a file or directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(session *client.Session) error {
			ok, err := session.RenamePath(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("failed to move %s to %s", args[0], args[1])
			}
			return nil
		})
	},
}

var fsPinCmd = &cobra.Command{
	Use:   "pin <path>",
	Short: "Pin a file so it is never evicted, or unpin it with --unpin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(session *client.Session) error {
			fileID, err := session.FileID(args[0])
			if err != nil {
				return err
			}
			if fileID < 0 {
				return fmt.Errorf("%s does not exist", args[0])
			}
			return session.SetPinned(fileID, !fsUnpin)
		})
	},
}

func init() {
	rootCmd.AddCommand(fsCmd)
	fsCmd.AddCommand(fsLsCmd, fsStatCmd, fsMkdirCmd, fsRmCmd, fsMvCmd, fsPinCmd)

	fsLsCmd.Flags().BoolVarP(&fsRecursive, "recursive", "r", false, "List recursively")
	fsRmCmd.Flags().BoolVarP(&fsRecursive, "recursive", "r", false, "Delete directories recursively")
	fsPinCmd.Flags().BoolVar(&fsUnpin, "unpin", false, "Unpin instead of pin")
}
