package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"pinboard/internal/app"
)

func newRecentCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "recent [count] [tag...]",
		Short: "Show the most recent bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			count := c.app.RecentCount()
			if len(args) > 0 {
				if n, err := strconv.Atoi(args[0]); err == nil {
					count = n
					args = args[1:]
				}
			}
			return c.app.Recent(cmd.Context(), cmd.OutOrStdout(), count, args)
		},
	}
}

func newDatesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "dates [tag...]",
		Short: "Show the number of bookmarks per day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Dates(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

func newSuggestCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <url>",
		Short: "Show popular and recommended tags for a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Suggest(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func newTagsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags with their bookmark counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Tags(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newUpdateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Show when the bookmarks last changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Update(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newAddCmd(c *cli) *cobra.Command {
	var (
		req       app.AddRequest
		shared    bool
		toRead    bool
		noReplace bool
	)
	cmd := &cobra.Command{
		Use:   "add <url> [tag...]",
		Short: "Save a bookmark",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.URL = args[0]
			req.Tags = args[1:]
			if cmd.Flags().Changed("shared") {
				req.Shared = &shared
			}
			if cmd.Flags().Changed("toread") {
				req.ToRead = &toRead
			}
			if noReplace {
				replace := false
				req.Replace = &replace
			}
			return c.app.Add(cmd.Context(), cmd.OutOrStdout(), req)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&req.Description, "description", "", "title of the bookmark (defaults to the URL)")
	flags.StringVar(&req.Extended, "extended", "", "longer description")
	flags.BoolVar(&shared, "shared", true, "make the bookmark public")
	flags.BoolVar(&toRead, "toread", false, "mark the bookmark as unread")
	flags.BoolVar(&noReplace, "no-replace", false, "fail if the URL is already bookmarked")
	flags.BoolVar(&req.FetchTitle, "fetch-title", false, "use the page title when no description is given")
	return cmd
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <url>",
		Short: "Remove a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Delete(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}
