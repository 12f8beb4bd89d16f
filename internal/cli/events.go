package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour/internal/api/response"
)

func newEventsCmd() *cobra.Command {
	var after uint64
	var limit int
	var all bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Read the event log",
		Long: `Read the event log in order.

By default a single page is printed. With --all, pages are fetched until the
end of the log is reached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout())

			page, err := fetchEvents(after, limit)
			if err != nil {
				return err
			}
			if !all {
				out.Print(page)
				return nil
			}

			merged := page
			for len(page.Events) > 0 {
				page, err = fetchEvents(page.Next, limit)
				if err != nil {
					return err
				}
				merged.Events = append(merged.Events, page.Events...)
				merged.Next = page.Next
			}
			out.Print(merged)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&after, "after", 0, "Only show events after this sequence number")
	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum events per page")
	cmd.Flags().BoolVar(&all, "all", false, "Fetch every page")
	return cmd
}

func fetchEvents(after uint64, limit int) (response.EventPage, error) {
	query := url.Values{}
	query.Set("after", strconv.FormatUint(after, 10))
	query.Set("limit", strconv.Itoa(limit))

	var page response.EventPage
	err := client.Get(fmt.Sprintf("/api/v1/events?%s", query.Encode()), &page)
	return page, err
}
