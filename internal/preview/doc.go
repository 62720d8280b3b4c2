// Package preview serves the widget gallery used while developing
// brickrouge themes and translations.
//
// The server renders every widget sample with the project catalogs and
// assets, exposes render metrics on /metrics and, when hot reload is on,
// reloads open pages as assets, catalogs or notes change.
//
//	srv := preview.NewServer(preview.ServerOptions{Config: cfg})
//	err := srv.Start(ctx)
package preview
