package service

// CarouselItem is one slide of a homepage carousel.
type CarouselItem struct {
	Title   string `json:"title"`
	Caption string `json:"caption,omitempty"`
	Image   string `json:"image,omitempty"`
	Link    string `json:"link,omitempty"`
}

// CarouselSection is one carousel on the marketing homepage.
type CarouselSection struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Items []CarouselItem `json:"items"`
}

// ContentService serves the static marketing content for the homepage.
type ContentService struct {
	sections []CarouselSection
}

// NewContentService creates a content service with the built-in homepage
// sections.
func NewContentService() *ContentService {
	return &ContentService{sections: homeSections}
}

// HomeContent returns the homepage carousel sections.
func (s *ContentService) HomeContent() []CarouselSection {
	sections := make([]CarouselSection, len(s.sections))
	copy(sections, s.sections)
	return sections
}

var homeSections = []CarouselSection{
	{
		ID:    "announcements",
		Title: "Announcements",
		Items: []CarouselItem{
			{
				Title:   "Recruitment open",
				Caption: "Applications for the new batch close at the end of the month.",
				Link:    "/login",
			},
			{
				Title:   "Winter hackathon",
				Caption: "48 hours, open theme, teams of up to four.",
				Image:   "/static/img/hackathon.jpg",
			},
		},
	},
	{
		ID:    "events",
		Title: "Upcoming Events",
		Items: []CarouselItem{
			{
				Title:   "Intro to Git workshop",
				Caption: "Hands-on session for first-years.",
				Image:   "/static/img/git-workshop.jpg",
			},
			{
				Title:   "Open source sprint",
				Caption: "Pick an issue, pair up, ship a patch.",
				Image:   "/static/img/oss-sprint.jpg",
			},
		},
	},
	{
		ID:    "highlights",
		Title: "Member Highlights",
		Items: []CarouselItem{
			{
				Title:   "Smart India Hackathon finalists",
				Caption: "Two club teams reached the national finals.",
				Image:   "/static/img/sih.jpg",
			},
		},
	},
}
