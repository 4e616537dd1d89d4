package content

// Owner identity shown in the nav logo and footer.
const (
	OwnerName    = "Wisdom Osawe Albert"
	BrandMark    = "W"
	BrandName    = "WISDOM"
	BrandTagline = "Tech Solutions"
	FooterBrand  = "WISDOM ALBERT PORTFOLIO SYSTEM"
	FooterMotto  = "DESIGNED FOR HIGH-PERFORMANCE"
)

// Contact endpoints.
const (
	Email = "wizzysax65@gmail.com"
	Phone = "07048000511"
)

// Remote images fetched by the browser. A failed load shows a broken image.
const (
	HeroImageURL   = "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?q=80&w=1000&auto=format&fit=crop"
	HeroImageAlt   = "Professional MacBook and iPad Setup"
	CameraImageURL = "https://images.unsplash.com/photo-1557597774-9d273605dfa9?q=80&w=1000&auto=format&fit=crop"
	CameraImageAlt = "High Tech CCTV Security System"
)

// Section copy.
const (
	HeroBadge = "Nigeria Based • Tech Solutions Expert"

	HeroLead = `Bridging the gap between Accounting Logic and Cloud Deployment. I design systems that just work.`

	AboutKicker = "The Tech-Accounting Nexus"

	AboutFoundation = `My foundation in Accounting at the University of Benin instilled a "zero-error" philosophy
	that I now apply to Cloud Systems and Security Infrastructure.`

	AboutReach = `From specialized CCTV surveillance architectures to AWS automation workflows, I build digital
	ecosystems that are as robust as they are scalable.`

	ExpertiseLead = `Fusing financial discipline with cutting-edge technical execution for a unique project perspective.`

	ConnectivityLead = `Bridging technological gaps for clients worldwide. Available for remote collaboration or
	strategic on-site relocations.`

	ContactLead = `Open for strategic technical roles, security consulting, or complex cloud deployments.`
)

// Stat is a small labelled figure on the about section.
type Stat struct {
	Value string
	Label string
}

// Meter is a labelled percentage bar on the expertise section.
type Meter struct {
	Label   string
	Percent int
}

// AboutStats returns the two figures under the about copy.
func AboutStats() []Stat {
	return []Stat{
		{Value: "Nigeria", Label: "Operations Hub"},
		{Value: "Secure", Label: "System Standard"},
	}
}

// CapabilityMeters returns the expertise summary bars.
func CapabilityMeters() []Meter {
	return []Meter{
		{Label: "Architecture & Cloud", Percent: 98},
		{Label: "Security Logics", Percent: 95},
	}
}

// Locations returns the service-area tags on the connectivity card.
func Locations() []string {
	return []string{"Lagos", "Abuja", "Remote", "Overseas"}
}
