// Package extract runs the screenshot extraction of a Steam profile.
//
// # Pipeline
//
// The Pipeline coordinates the whole extraction:
//
//  1. Turn the profile URL into its screenshot gallery URL
//  2. Load the fully scrolled gallery through a ProfileFetcher
//  3. Collect the screenshot detail links
//  4. Fetch and parse the detail pages concurrently
//  5. Assemble the records in link order
//
// # Basic Usage
//
//	pipeline := extract.NewPipeline(settings, fetcher, client, logger, func(event extract.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	res, err := pipeline.Run(ctx, "https://steamcommunity.com/id/someone")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range res.Failures {
//	    fmt.Println(f.Link, f.Reason())
//	}
//
// # Failures
//
// A detail page that cannot be fetched or parsed becomes a model.Failure and
// the run continues. Only an invalid profile URL or an unreachable gallery
// index fail the run as a whole.
//
// # Concurrency
//
// At most settings.MaxConcurrentRequests detail pages are in flight. Each
// link owns one result slot, so the output order matches the gallery order
// whatever order the requests complete in.
package extract
