package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wanglongqi/uniunit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of uniunit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("uniunit version %s\n", uniunit.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
