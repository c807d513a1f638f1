package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-polymat")

	rings := []ringSpecs{
		{Package: "bls12377", Curve: "bls12-377", Title: "BLS12-377"},
		{Package: "bn254", Curve: "bn254", Title: "BN254"},
	}

	for _, rs := range rings {
		assertNoError(rs.validate(), "for ring \"%s\"", rs.Package)

		assertNoError(bgen.Generate(rs, rs.Package, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element.go", rs.Package),
				Templates: []string{"element.go.tmpl"},
			},
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element_test.go", rs.Package),
				Templates: []string{"element.test.go.tmpl"},
			},
		), "for ring \"%s\"", rs.Package)
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

// ringSpecs identifies a scalar field of gnark-crypto to be wrapped as a
// coefficient ring.
type ringSpecs struct {
	// Name of the generated package
	Package string
	// Directory of the curve within gnark-crypto's ecc package
	Curve string
	// Human readable curve name used in documentation
	Title string
}

func (r ringSpecs) validate() error {
	if r.Package == "" || r.Curve == "" {
		return fmt.Errorf("package and curve are required")
	} else if strings.ContainsAny(r.Package, "-_.") {
		return fmt.Errorf("invalid package name %q", r.Package)
	}
	//
	return nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
