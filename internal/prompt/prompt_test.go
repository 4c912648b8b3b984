package prompt_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/heronames/internal/prompt"
)

var _ = Describe("Build", func() {
	It("ends with the capitalized target animal and the names cue", func() {
		Expect(prompt.Build("tiger")).To(HaveSuffix("Animal: Tiger\nNames:"))
	})

	It("embeds both few-shot examples verbatim", func() {
		p := prompt.Build("tiger")

		Expect(p).To(HavePrefix("Suggest three names for an animal that is a superhero.\n"))
		Expect(p).To(ContainSubstring("Animal: Cat\nNames: Captain Sharpclaw, Agent Fluffball, The Incredible Feline\n"))
		Expect(p).To(ContainSubstring("Animal: Dog\nNames: Ruff the Protector, Wonder Canine, Sir Barks-a-Lot\n"))
		Expect(strings.Index(p, "Animal: Cat")).To(BeNumerically("<", strings.Index(p, "Animal: Dog")))
		Expect(strings.Index(p, "Animal: Dog")).To(BeNumerically("<", strings.Index(p, "Animal: Tiger")))
	})

	DescribeTable("capitalizes only the first letter",
		func(animal, expected string) {
			Expect(prompt.Build(animal)).To(HaveSuffix("\nAnimal: " + expected + "\nNames:"))
		},
		Entry("lowercase", "shark", "Shark"),
		Entry("already capitalized", "Shark", "Shark"),
		Entry("rest of the casing is kept", "hONEY badger", "HONEY badger"),
		Entry("multi-byte first letter", "élan", "Élan"),
		Entry("leading digit untouched", "3-toed sloth", "3-toed sloth"),
		Entry("single letter", "x", "X"),
	)

	It("still produces a well-formed prompt for an empty animal", func() {
		p := prompt.Build("")
		Expect(p).To(HaveSuffix("\nAnimal: \nNames:"))
		Expect(p).To(ContainSubstring("Animal: Cat"))
	})

	It("is deterministic", func() {
		Expect(prompt.Build("owl")).To(Equal(prompt.Build("owl")))
	})
})
