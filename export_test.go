package main

// Export internal functions for testing

var Serve = serve

// StubOpenBrowser replaces the browser launcher and returns a restore
// function.
func StubOpenBrowser(fn func(url string) error) func() {
	saved := openBrowser
	openBrowser = fn
	return func() { openBrowser = saved }
}
