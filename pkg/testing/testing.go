package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// tests run from the project root so the logger's logs/ directory lands in one place
	// usage is
	//
	//   in some_test.go,
	//   import (
	//     _ "liyu1981.xyz/hydro-plant-simulator/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)           // here runtime will return current file path
	dir := path.Join(path.Dir(filename), "..", "..") // and by double .. we will go to the project root
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}
