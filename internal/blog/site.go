package blog

// SiteContent holds the fixed texts shown on the home, about and contact
// pages. It is built once at startup and never mutated.
type SiteContent struct {
	Title   string `yaml:"title"`
	Home    string `yaml:"home"`
	About   string `yaml:"about"`
	Contact string `yaml:"contact"`
}

func DefaultSiteContent() SiteContent {
	return SiteContent{
		Title:   "Daily Journal",
		Home:    "Dear readers, thank you for stopping by and joining me on this exciting journey through my thoughts, experiences, and adventures. This blog is a space where I intend to share my passions, insights, and the little nuggets of wisdom I've picked up along the way.",
		About:   "The information provided on this personal blog website is for general informational purposes only. The content is based on the author's experiences, opinions, and research up to the date of publication, and it may not be entirely up-to-date or accurate in the future.",
		Contact: "Scelerisque eleifend donec pretium vulputate sapien. Rhoncus urna neque viverra justo nec ultrices. Arcu dui vivamus arcu felis bibendum. Consectetur adipiscing elit duis tristique. Risus viverra adipiscing at in tellus integer feugiat. Sapien nec sagittis aliquam malesuada bibendum arcu vitae. Consequat interdum varius sit amet mattis. Iaculis nunc sed augue lacus. Interdum posuere lorem ipsum dolor sit amet consectetur adipiscing elit. Pulvinar elementum integer enim neque. Ultrices gravida dictum fusce ut placerat orci nulla. Mauris in aliquam sem fringilla ut morbi tincidunt. Tortor posuere ac ut consequat semper viverra nam libero.",
	}
}

// WithDefaults fills empty fields from DefaultSiteContent.
func (c SiteContent) WithDefaults() SiteContent {
	def := DefaultSiteContent()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Home == "" {
		c.Home = def.Home
	}
	if c.About == "" {
		c.About = def.About
	}
	if c.Contact == "" {
		c.Contact = def.Contact
	}
	return c
}
