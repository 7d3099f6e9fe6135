package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "cppcheck-codequality",
	Short:   "Converte relatórios XML do CppCheck em Code Quality JSON (GitLab/Code Climate)",
	Version: "1.0.0",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
