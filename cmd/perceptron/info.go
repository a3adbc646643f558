// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"github.com/go-highway/perceptron/hwy"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the SIMD dispatch level and CPU details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SIMD level: %s (%d lanes per vector)\n", hwy.CurrentName(), hwy.NumLanes)
			fmt.Fprintf(out, "Hardware FMA: %v\n", hwy.HasFMA())
			if hwy.NoSimdEnv() {
				fmt.Fprintln(out, "HWY_NO_SIMD is set")
			}

			cpu := cpuid.CPU
			fmt.Fprintf(out, "CPU: %s (%s)\n", cpu.BrandName, cpu.VendorString)
			fmt.Fprintf(out, "Cores: %d physical, %d logical\n", cpu.PhysicalCores, cpu.LogicalCores)
			if cpu.Cache.L1D > 0 {
				fmt.Fprintf(out, "L1 data cache: %d bytes, line %d bytes\n", cpu.Cache.L1D, cpu.CacheLine)
			}
			fmt.Fprintf(out, "Features: %s\n", strings.Join(cpu.FeatureSet(), " "))
			return nil
		},
	}
}
