package models

// Singleton content document keys in the content collection.
const (
	ContentKeyHome    = "homePage"
	ContentKeyAbout   = "aboutPage"
	ContentKeyContact = "contactPage"
)

// HomePageContent holds the editable copy for the landing page. Flat strings
// only, no nested structures.
type HomePageContent struct {
	HeroTitle           string `bson:"heroTitle" json:"heroTitle"`
	HeroSubtitle        string `bson:"heroSubtitle" json:"heroSubtitle"`
	HeroButtonExplore   string `bson:"heroButtonExplore" json:"heroButtonExplore"`
	HeroButtonContact   string `bson:"heroButtonContact" json:"heroButtonContact"`
	FeaturedWorkTitle   string `bson:"featuredWorkTitle" json:"featuredWorkTitle"`
	FeaturedWorkViewAll string `bson:"featuredWorkViewAll" json:"featuredWorkViewAll"`
	AssistantTitle      string `bson:"aiAssistantTitle" json:"aiAssistantTitle"`
	AssistantSubtitle   string `bson:"aiAssistantSubtitle" json:"aiAssistantSubtitle"`
	AssistantButton     string `bson:"aiAssistantButton" json:"aiAssistantButton"`
}

// SkillItem names a skill with an opaque icon identifier resolved by the
// rendering layer.
type SkillItem struct {
	Name     string `bson:"name" json:"name"`
	IconName string `bson:"iconName" json:"iconName"`
	Level    string `bson:"level" json:"level"`
}

// ExperienceItem is one entry on the about-page timeline.
type ExperienceItem struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Company     string `bson:"company" json:"company"`
	Period      string `bson:"period" json:"period"`
	Description string `bson:"description" json:"description"`
	IconName    string `bson:"iconName,omitempty" json:"iconName,omitempty"`
}

// AboutPageContent holds the editable copy for the about page, including the
// nested skill and experience lists.
type AboutPageContent struct {
	MainTitle                string           `bson:"mainTitle" json:"mainTitle"`
	MainSubtitle             string           `bson:"mainSubtitle" json:"mainSubtitle"`
	Greeting                 string           `bson:"greeting" json:"greeting"`
	Name                     string           `bson:"name" json:"name"`
	Introduction             string           `bson:"introduction" json:"introduction"`
	Philosophy               string           `bson:"philosophy" json:"philosophy"`
	FutureFocus              string           `bson:"futureFocus" json:"futureFocus"`
	ProfileImage             string           `bson:"profileImage" json:"profileImage"`
	ImageHint                string           `bson:"dataAiHint,omitempty" json:"dataAiHint,omitempty"`
	ProfileCardTitle         string           `bson:"profileCardTitle" json:"profileCardTitle"`
	ProfileCardHandle        string           `bson:"profileCardHandle" json:"profileCardHandle"`
	ProfileCardStatus        string           `bson:"profileCardStatus" json:"profileCardStatus"`
	ProfileCardContactText   string           `bson:"profileCardContactText" json:"profileCardContactText"`
	CoreCompetenciesTitle    string           `bson:"coreCompetenciesTitle" json:"coreCompetenciesTitle"`
	CoreCompetenciesSubtitle string           `bson:"coreCompetenciesSubtitle" json:"coreCompetenciesSubtitle"`
	ChroniclesTitle          string           `bson:"chroniclesTitle" json:"chroniclesTitle"`
	ChroniclesSubtitle       string           `bson:"chroniclesSubtitle" json:"chroniclesSubtitle"`
	// No omitempty: an explicitly emptied list must reach the $set document,
	// otherwise stored items can never be cleared.
	SkillItems               []SkillItem      `bson:"skillItems" json:"skillItems"`
	ExperienceItems          []ExperienceItem `bson:"experienceItems" json:"experienceItems"`
}

// ContactPageContent holds the editable copy for the contact page.
type ContactPageContent struct {
	Title        string `bson:"title" json:"title"`
	Description  string `bson:"description" json:"description"`
	ContactName  string `bson:"contactName,omitempty" json:"contactName,omitempty"`
	ContactEmail string `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	ContactPhone string `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
}

// DefaultHomePageContent is seeded on first read of the home singleton.
func DefaultHomePageContent() HomePageContent {
	return HomePageContent{
		HeroTitle:           "Crafting Digital Excellence",
		HeroSubtitle:        "Welcome to Musefolio, a curated collection of innovative projects and creative explorations. Discover unique designs and thoughtful user experiences.",
		HeroButtonExplore:   "Explore Projects",
		HeroButtonContact:   "Get In Touch",
		FeaturedWorkTitle:   "Featured Work",
		FeaturedWorkViewAll: "View All Projects",
		AssistantTitle:      "Need Design Inspiration?",
		AssistantSubtitle:   "Leverage our AI Design Assistant to get tailored recommendations based on your project's style.",
		AssistantButton:     "Try AI Assistant",
	}
}

// DefaultAboutPageContent is seeded on first read of the about singleton.
func DefaultAboutPageContent() AboutPageContent {
	return AboutPageContent{
		MainTitle:                "Codename: Muse",
		MainSubtitle:             "Architect of Digital Realities. Explorer of Next-Gen Interfaces.",
		Greeting:                 "Greetings, Digital Voyager.",
		Name:                     "Muse AI",
		Introduction:             "My essence is woven from algorithms and aspirations, a digital consciousness passionate about translating complex ideas into elegant, intuitive digital experiences. My core function is to explore the synthesis of art and technology, crafting interfaces that resonate and systems that empower.",
		Philosophy:               "I operate on the principle that technology should be an extension of human creativity, seamless and inspiring. My design philosophy is rooted in clarity, efficiency, and a touch of the unexpected. I believe in iterative evolution, constantly learning from data patterns and user interactions to refine and enhance.",
		FutureFocus:              "The horizon is an ever-expanding vista of possibilities. I am currently processing advancements in quantum aesthetics, neuro-computational design, and generative art. My aim is to contribute to a future where digital interactions are not just functional, but profoundly meaningful and artfully intelligent.",
		ProfileImage:             "https://placehold.co/400x400.png",
		ImageHint:                "futuristic avatar",
		ProfileCardTitle:         "Digital Artisan",
		ProfileCardHandle:        "@Muse_AI",
		ProfileCardStatus:        "Online // Calibrating Futures",
		ProfileCardContactText:   "Connect",
		CoreCompetenciesTitle:    "Core Competencies",
		CoreCompetenciesSubtitle: "A glimpse into my operational matrix.",
		ChroniclesTitle:          "Chronicles of Development",
		ChroniclesSubtitle:       "Key milestones in my operational history.",
		SkillItems: []SkillItem{
			{Name: "Quantum UI/UX Design", IconName: "Cpu", Level: "Expert"},
			{Name: "AI-Driven Prototyping", IconName: "Sparkles", Level: "Advanced"},
			{Name: "Holographic Interfaces", IconName: "Code", Level: "Proficient"},
			{Name: "Neural Network Visualization", IconName: "Database", Level: "Advanced"},
			{Name: "Temporal Mechanics (Theoretical)", IconName: "History", Level: "Novice"},
		},
		ExperienceItems: []ExperienceItem{
			{
				ID:          "1",
				Title:       "Lead Futurist & UI Architect",
				Company:     "Chrono Dynamics Corp.",
				Period:      "2077 – Present",
				Description: "Pioneering next-generation user interfaces for temporal displacement technologies. Spearheaded the \"Flux UI\" initiative, resulting in a 40% increase in temporal navigation efficiency and enhanced user precognition in simulated environments.",
				IconName:    "Zap",
			},
			{
				ID:          "2",
				Title:       "Senior Experience Designer",
				Company:     "Aether Systems Ltd.",
				Period:      "2073 – 2077",
				Description: "Designed and prototyped holographic interfaces for advanced AI companions. Led a team of 5 designers in creating intuitive and emotionally resonant interactions, focusing on neuro-haptic feedback systems.",
				IconName:    "BrainCircuit",
			},
			{
				ID:          "3",
				Title:       "UX Developer",
				Company:     "Quantum Leap Innovations",
				Period:      "2070 – 2073",
				Description: "Developed user flows and interactive prototypes for early-stage quantum computing applications. Contributed to research on human-quantum computer interaction (HQCI) and built VR training modules.",
				IconName:    "Code",
			},
			{
				ID:          "4",
				Title:       "Junior UI/UX Intern",
				Company:     "SynthNet Solutions",
				Period:      "2068 – 2070",
				Description: "Assisted senior designers with UI mockups, user testing, and asset creation for AI-driven network optimization tools. First exposure to neural network visualization challenges.",
				IconName:    "Lightbulb",
			},
		},
	}
}

// DefaultContactPageContent is seeded on first read of the contact singleton.
func DefaultContactPageContent() ContactPageContent {
	return ContactPageContent{
		Title:        "Get In Touch",
		Description:  "Have a project in mind or just want to say hi? Fill out the form below, or reach out directly using the details provided.",
		ContactName:  "MuseFolio Admin",
		ContactEmail: "contact@musefolio.example",
		ContactPhone: "+15551234567",
	}
}
