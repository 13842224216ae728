package slides_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSlides(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Slides Suite")
}
