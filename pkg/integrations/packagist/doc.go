// Package packagist provides an HTTP client for Packagist, the PHP Composer
// repository.
//
// # Usage
//
//	client := packagist.NewClient(10 * time.Second)
//	v, err := client.LatestVersion(ctx, "laravel/framework")
//
// Dev branches ("dev-master", "11.x-dev") and pre-releases ("v12.0.0-RC1")
// are skipped.
package packagist
