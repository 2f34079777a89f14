/*
Package errors provides semantic error types for the uxfetch tool.

The package defines the failure taxonomy of a download run with specific
types that can be checked using the standard errors.Is() function or the
provided helper functions.

Common Errors:

	var (
	    ErrAuthentication = errors.New("authentication failed")
	    ErrNotFound       = errors.New("experiment data not found")
	    ErrRemoteService  = errors.New("remote service failure")
	    ErrUsage          = errors.New("invalid usage")
	)

Usage:

	// Check error type
	err := fetcher.Fetch(ctx, query, sink)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // The experiment name may be wrong
	        return fmt.Errorf("no data for %q, check the experiment name", query.Experiment)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotFoundError("MyStudy", "UXFData.MyStudy.TrialResults")
	err := errors.NewAuthenticationError("scan", cause)
	err := errors.NewUsageError("--access and --secret must both be specified")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
