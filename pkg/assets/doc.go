// Package assets collects, resolves and publishes the CSS and JavaScript
// files widgets depend on.
//
// Widgets declare their assets once per render session by adding paths to a
// Collector with a weight:
//
//	css := assets.NewCollector()
//	css.Add("brickrouge.css", -100)
//	css.Add("popover.css", 0)
//	css.Get() // ["brickrouge.css", "popover.css"]
//
// A Resolver turns a collected path into the URL written in the page. In
// development paths pass through with a prefix; in production a Manifest
// maps each source to its fingerprinted or published location:
//
//	manifest, _ := assets.Load("dist/manifest.json")
//	resolver := assets.NewResolver(manifest, "/public/")
//	resolver.Asset("brickrouge.js") // "/public/brickrouge.3f2a91c0.js"
//
// S3Publisher uploads collected files to a bucket and records their public
// URLs in a Manifest.
package assets
