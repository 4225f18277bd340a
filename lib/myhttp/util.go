package myhttp

import (
	"fmt"
	"os"
)

// GuessHostnameWithScheme composes the externally reachable base URL of this
// service, used when registering push subscriptions.
func GuessHostnameWithScheme() string {
	project := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if project != "" {
		return fmt.Sprintf("https://%s.appspot.com", project)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return fmt.Sprintf("http://localhost:%s", port)
}
