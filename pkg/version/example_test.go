package version_test

import (
	"fmt"

	"github.com/matzehuels/latest-stack/pkg/version"
)

func ExampleNormalize() {
	fmt.Println(version.Normalize("swift-6.2.3-RELEASE"))
	fmt.Println(version.Normalize("go1.22.0"))
	fmt.Println(version.Normalize("v1.2.3"))
	// Output:
	// 6.2.3
	// 1.22.0
	// 1.2.3
}

func ExampleBest() {
	tags := []string{"version-3.45.1", "version-3.51.2", "vesion-3.50.0"}
	fmt.Println(version.Best(tags))
	// Output:
	// 3.51.2
}
