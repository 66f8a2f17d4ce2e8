// Package health provides liveness and readiness HTTP handlers.
//
// [LivenessHandler] always answers OK. [ReadinessHandler] runs a set of named
// [Checks] in parallel under a shared timeout and answers 503 when any fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "site_root":    health.FileCheck(siteFS, "."),
//	    "translations": health.Condition(func() bool { return len(tr.Keys("en", "site")) > 0 }, "no site translations"),
//	}, health.WithLogger(log)))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client sends
// Accept: application/json or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "site_root": {"status": "unhealthy", "error": "health: check failed: open .: file does not exist"}
//	  }
//	}
package health
