// Package download fetches documents over HTTP as text.
//
// A Client performs exactly one GET per call: no retries, no timeout and no
// redirect following. DownloadAsString reports the outcome once through a
// callback, with status -1 and the error message on transport failure:
//
//	client := download.NewClient(download.WithLogger(logger))
//	client.DownloadAsString(url, "EvothingsWorkbench/2.0", func(status int, body string) {
//	    if status == -1 {
//	        // body holds the error message
//	    }
//	})
package download
