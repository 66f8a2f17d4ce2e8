// Package status loads the daily status document published next to the
// site and maps its status to an indicator symbol.
//
//	loader := status.NewLoader(
//	    status.NewFSSource(siteFS, status.DefaultPath),
//	    status.WithLogger(log),
//	)
//	rec, err := loader.Load(ctx)
//	if errors.Is(err, status.ErrUnavailable) {
//	    // keep the fallback markup
//	}
//
// Symbols: OK 🟢, ATTENTION 🟠, ERROR 🔴, PAUSED ⚪; anything else ⚪.
package status
