//go:build e2e

package e2e

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestE2E(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "kessho E2E Suite", Label("e2e"))
}

var _ = Describe("kessho transaction scenarios", Ordered, func() {
	Context("Planning", planningTests)
	Context("Execution", executionTests)
})
