// Package maven provides an HTTP client for Maven Central search.
//
// # Usage
//
//	client := maven.NewClient(10 * time.Second)
//	v, err := client.LatestVersion(ctx, "org.springframework.boot:spring-boot")
//
// Coordinates use the "groupId:artifactId" form. The search API reports
// latestVersion for grouped results and v for single documents; the first
// non-empty one is returned.
package maven
