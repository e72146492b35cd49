package scenario

import (
	"github.com/liinajapson/budget-tool/internal/allocation"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func int64p(v int64) *int64 { return &v }
func boolp(v bool) *bool    { return &v }

var _ = Describe("Load", func() {
	It("should read a scenario document", func() {
		s, err := Load("testdata/fall-intake.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Validate()).To(Succeed())
		Expect(s.Metadata.Name).To(Equal("fall-intake"))
		Expect(s.Metadata.Labels).To(HaveKeyWithValue("team", "finance"))
		Expect(s.Budget).To(Equal(Budget{Total: 10000, Ceiling: 1200, AllowPartial: true, MinBase: 500}))
		Expect(s.Tiers).To(HaveLen(3))
		Expect(s.Applicants()).To(Equal(45))
	})

	It("should report a missing file", func() {
		_, err := Load("testdata/missing.yaml")
		Expect(err).To(MatchError(ContainSubstring("read scenario")))
	})

	It("should reject malformed yaml", func() {
		_, err := Parse([]byte("tiers: [amount"))
		Expect(err).To(MatchError(ContainSubstring("parse scenario")))
	})

	It("should round-trip through Marshal", func() {
		preset, err := PresetByName("partial")
		Expect(err).NotTo(HaveOccurred())
		data, err := Marshal(preset)
		Expect(err).NotTo(HaveOccurred())
		parsed, err := Parse(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed).To(Equal(preset))
	})
})

var _ = Describe("Validate", func() {
	It("should collect every problem", func() {
		s, err := Load("testdata/invalid.yaml")
		Expect(err).NotTo(HaveOccurred())

		err = s.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`apiVersion must be "budget-tool.dev/v1"`))
		Expect(err.Error()).To(ContainSubstring("metadata.name is required"))
		Expect(err.Error()).To(ContainSubstring("budget.total must not be negative"))
		Expect(err.Error()).To(ContainSubstring("tiers[0].amount must not be negative"))
	})

	It("should accept a scenario without applicants", func() {
		s, _ := PresetByName("default")
		s.Tiers = nil
		Expect(s.Validate()).To(Succeed())
		Expect(s.Applicants()).To(BeZero())
	})
})

var _ = Describe("Advisories", func() {
	var s Scenario

	BeforeEach(func() {
		s, _ = PresetByName("partial")
	})

	It("should be empty for a consistent policy", func() {
		Expect(s.Advisories()).To(BeEmpty())
	})

	It("should warn when the minimum base exceeds the ceiling", func() {
		s.Budget.MinBase = 1500
		Expect(s.Advisories()).To(ConsistOf(ContainSubstring("exceeds scholarship ceiling")))
	})

	It("should stay quiet when partial funding is off", func() {
		s.Budget.AllowPartial = false
		s.Budget.MinBase = 1500
		Expect(s.Advisories()).To(BeEmpty())
	})
})

var _ = Describe("ParseTiers", func() {
	It("should parse amount by count pairs", func() {
		tiers, err := ParseTiers("500x20, 800X15,1200x10")
		Expect(err).NotTo(HaveOccurred())
		Expect(tiers).To(Equal([]Tier{{500, 20}, {800, 15}, {1200, 10}}))
		Expect(FormatTiers(tiers)).To(Equal("500x20,800x15,1200x10"))
	})

	It("should return nothing for blank input", func() {
		tiers, err := ParseTiers("  ")
		Expect(err).NotTo(HaveOccurred())
		Expect(tiers).To(BeEmpty())
	})

	DescribeTable("should reject bad pairs",
		func(input string) {
			_, err := ParseTiers(input)
			Expect(err).To(HaveOccurred())
		},
		Entry("missing count", "500x"),
		Entry("missing separator", "500"),
		Entry("negative amount", "-5x2"),
		Entry("negative count", "5x-2"),
		Entry("not a number", "fivex2"),
	)
})

var _ = Describe("ApplyOverrides", func() {
	It("should replace only the fields given", func() {
		base, _ := PresetByName("default")
		out := base.ApplyOverrides(Overrides{
			Tiers:        []Tier{{Amount: 700, Count: 3}},
			Total:        int64p(2100),
			AllowPartial: boolp(true),
		})
		Expect(out.Tiers).To(Equal([]Tier{{700, 3}}))
		Expect(out.Budget.Total).To(Equal(int64(2100)))
		Expect(out.Budget.AllowPartial).To(BeTrue())
		Expect(out.Budget.Ceiling).To(Equal(base.Budget.Ceiling))
		Expect(base.Tiers).To(HaveLen(3), "original is untouched")
	})
})

var _ = Describe("Conversion", func() {
	It("should produce engine inputs", func() {
		s, _ := PresetByName("partial")
		Expect(s.CostTiers()).To(Equal([]allocation.CostTier{{Amount: 500, Count: 20}, {Amount: 800, Count: 15}, {Amount: 1200, Count: 10}}))
		Expect(s.Config()).To(Equal(allocation.BudgetConfig{TotalBudget: 10000, Ceiling: 1200, AllowPartial: true, MinBase: 500}))
	})
})

var _ = Describe("Presets", func() {
	It("should list names in order", func() {
		Expect(PresetNames()).To(Equal([]string{"capped", "default", "partial"}))
	})

	It("should validate every preset", func() {
		for _, name := range PresetNames() {
			s, err := PresetByName(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Validate()).To(Succeed(), name)
		}
	})

	It("should reject unknown names", func() {
		_, err := PresetByName("nope")
		Expect(err).To(MatchError(ContainSubstring("preset must be one of")))
	})
})
