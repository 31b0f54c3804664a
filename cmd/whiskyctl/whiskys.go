package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all whiskys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := checkResponse(newClient(apiFlag).R().Get("/rest/whiskys"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, body)
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get ID",
		Short: "Get a whisky by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := checkResponse(newClient(apiFlag).R().Get("/rest/whiskys/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, body)
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	// add
	var addName, addOrigin string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a whisky",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"name": addName, "origin": addOrigin}
			body, err := checkResponse(newClient(apiFlag).R().SetBody(payload).Post("/rest/whiskys"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, body)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Whisky name (required)")
	addCmd.Flags().StringVarP(&addOrigin, "origin", "o", "", "Whisky origin (required)")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("origin")
	rootCmd.AddCommand(addCmd)

	// update
	var updName, updOrigin string
	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a whisky's name and/or origin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only changed flags go into the payload; absent fields keep
			// their stored values on the server.
			payload := map[string]interface{}{}
			if cmd.Flags().Changed("name") {
				payload["name"] = updName
			}
			if cmd.Flags().Changed("origin") {
				payload["origin"] = updOrigin
			}
			if len(payload) == 0 {
				return fmt.Errorf("at least one of --name or --origin is required")
			}
			body, err := checkResponse(newClient(apiFlag).R().SetBody(payload).Put("/rest/whiskys/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, body)
			return nil
		},
	}
	updateCmd.Flags().StringVarP(&updName, "name", "n", "", "New whisky name")
	updateCmd.Flags().StringVarP(&updOrigin, "origin", "o", "", "New whisky origin")
	rootCmd.AddCommand(updateCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a whisky by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := checkResponse(newClient(apiFlag).R().Delete("/rest/whiskys/" + args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "Deleted.")
			return nil
		},
	}
	rootCmd.AddCommand(deleteCmd)
}
