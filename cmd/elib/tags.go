// Tags command lists the distinct tags in use.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the distinct tags in the library",
	RunE:  runTags,
}

func runTags(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tags := store.UniqueTags()

	if flagJSON {
		return printJSON(tags)
	}
	if len(tags) == 0 {
		fmt.Println("No tags yet.")
		return nil
	}
	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}
