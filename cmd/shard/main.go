//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fogfish/shard"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shard",
		Short: "shard identity CLI",
		Long:  "shard mints and inspects compact sortable identities.",
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Mint identities",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("count")
			service, _ := cmd.Flags().GetUint64("service")
			base, _ := cmd.Flags().GetInt("base")

			abc, err := shard.Radix(base)
			if err != nil {
				return err
			}

			c := shard.NewClock(
				shard.WithServiceID(service),
			)
			for i := 0; i < n; i++ {
				txt, err := shard.ToString(shard.New(c), abc)
				if err != nil {
					return err
				}
				fmt.Println(txt)
			}
			return nil
		},
	}
	newCmd.Flags().Int("count", 1, "number of identities to mint")
	newCmd.Flags().Uint64("service", 0, "service unique identifier, 16 bit")
	newCmd.Flags().Int("base", 62, "radix of the output encoding, 2 to 62")
	rootCmd.AddCommand(newCmd)

	inspectCmd := &cobra.Command{
		Use:   "inspect <identity> ...",
		Short: "Inspect identity fractions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _ := cmd.Flags().GetInt("base")

			abc, err := shard.Radix(base)
			if err != nil {
				return err
			}

			for _, arg := range args {
				uid, err := shard.FromString(arg, abc)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}

				num := shard.Value(uid)
				fmt.Printf("%s\n", arg)
				fmt.Printf("  value   %s\n", num.Dec())
				fmt.Printf("  time    %d ms (%s)\n", shard.Time(uid), shard.TimeUnix(uid).UTC().Format(time.RFC3339Nano))
				fmt.Printf("  service %d\n", shard.Service(uid))
				fmt.Printf("  count   %d\n", shard.Count(uid))
			}
			return nil
		},
	}
	inspectCmd.Flags().Int("base", 62, "radix of the input encoding, 2 to 62")
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
