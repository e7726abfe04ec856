package text_test

import (
	"math/rand/v2"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rwx-cloud/justify/internal/text"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// randomInput builds words no longer than maxWordLength joined by runs of one
// to three spaces.
func randomInput(r *rand.Rand, words, maxWordLength int) string {
	var b strings.Builder
	for i := range words {
		if i > 0 || r.IntN(2) == 0 {
			b.WriteString(strings.Repeat(" ", 1+r.IntN(3)))
		}
		for range 1 + r.IntN(maxWordLength) {
			b.WriteByte(letters[r.IntN(len(letters))])
		}
	}
	return b.String()
}

var _ = Describe("Transform", func() {
	var r *rand.Rand

	BeforeEach(func() {
		r = rand.New(rand.NewPCG(42, 1024))
	})

	DescribeTable("produces lines of exactly the requested width",
		func(width int) {
			for range 50 {
				input := randomInput(r, 1+r.IntN(40), width)

				result, err := text.Transform(input, width)
				Expect(err).NotTo(HaveOccurred())

				for _, line := range strings.Split(result, "\n") {
					Expect(line).To(HaveLen(width))
				}
			}
		},
		Entry("narrow", 3),
		Entry("medium", 12),
		Entry("wide", 40),
	)

	It("preserves word order", func() {
		for range 50 {
			input := randomInput(r, 1+r.IntN(40), 10)

			result, err := text.Transform(input, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Fields(result)).To(Equal(strings.Fields(input)))
		}
	})

	It("reproduces its output when re-wrapping collapsed output", func() {
		for range 50 {
			input := randomInput(r, 1+r.IntN(40), 8)

			result, err := text.Transform(input, 15)
			Expect(err).NotTo(HaveOccurred())

			again, err := text.Transform(strings.Join(strings.Fields(result), " "), 15)
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(result))
		}
	})

	It("never ends with a line break", func() {
		result, err := text.Transform(randomInput(r, 30, 6), 9)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).NotTo(HaveSuffix("\n"))
	})

	It("reports the first word that is too long", func() {
		for range 20 {
			long := strings.Repeat("x", 11+r.IntN(5))
			input := randomInput(r, 5, 10) + " " + long + " " + strings.Repeat("y", 20)

			result, err := text.Transform(input, 10)
			Expect(result).To(BeEmpty())

			var wordErr *text.WordTooLongError
			Expect(err).To(BeAssignableToTypeOf(wordErr))
			Expect(err).To(MatchError("'" + long + "' length is more than 10"))
		}
	})
})
