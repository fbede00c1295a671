package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmatsu/story-checker/internal/catalog"
)

var criteriaCommand = &cobra.Command{
	Use:   "criteria",
	Short: "List the evaluation categories and criteria",
	RunE:  runCriteriaCmd,
}

func init() {
	rootCmd.AddCommand(criteriaCommand)
}

func runCriteriaCmd(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	for _, category := range cat.Categories() {
		fmt.Printf("[%d] %s (%s, scope: %s)\n", category.Priority, category.DisplayName, category.ID, category.Scope)
		for _, criterion := range cat.Criteria(category) {
			fmt.Printf("    - %s: %s\n", criterion.ID, criterion.Description)
		}
		fmt.Println()
	}
	return nil
}
