// Package site holds the static event content served to the public pages.
package site

import "github.com/mckvie/hackathon/internal/hackathon"

type NavItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type Info struct {
	Name        string    `json:"name"`
	Event       string    `json:"event"`
	Year        string    `json:"year"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Website     string    `json:"website"`
	GitHub      string    `json:"github"`
	RulebookURL string    `json:"rulebookUrl"`
	Navigation  []NavItem `json:"navigation"`
}

type Phase struct {
	Date   string  `json:"date"`
	Title  string  `json:"title"`
	Type   string  `json:"type"`
	Events []Event `json:"events"`
}

type Event struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type Problem struct {
	ID          int      `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Difficulty  string   `json:"difficulty"`
	Duration    string   `json:"duration"`
	TeamSize    string   `json:"teamSize"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Prizes      []string `json:"prizes"`
}

type GalleryItem struct {
	ID          int    `json:"id"`
	Place       string `json:"place"`
	Title       string `json:"title"`
	Title2      string `json:"title2"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Date        string `json:"date"`
	Category    string `json:"category"`
}

type Member struct {
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Bio      string   `json:"bio,omitempty"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	GitHub   string   `json:"github,omitempty"`
	LinkedIn string   `json:"linkedin,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type ContactMethod struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Contact struct {
	Organizers []Member        `json:"organizers"`
	Methods    []ContactMethod `json:"methods"`
	Social     []SocialLink    `json:"social"`
}

func SiteInfo() Info {
	return Info{
		Name:        "MCKVIE",
		Event:       "Hackathon",
		Year:        "2025",
		Email:       "hackathon@mckvie.edu.in",
		Phone:       "+91 98765 43210",
		Website:     "www.mckvie.edu.in",
		GitHub:      "github.com/mckvie-hackathon",
		RulebookURL: "/rulebook.pdf",
		Navigation: []NavItem{
			{Name: "Home", Path: "/"},
			{Name: "Problems", Path: "/problems"},
			{Name: "Schedule", Path: "/schedule"},
			{Name: "Register", Path: "/register"},
			{Name: "Contact", Path: "/contact"},
		},
	}
}

func Schedule() []Phase {
	return []Phase{
		{
			Date:  "October 9-10, 2025",
			Title: "First Screening Phase",
			Type:  "Online",
			Events: []Event{
				{"All Day", "Registration & Initial Submission", "Submit your team registration and initial project proposal", "Online Portal"},
				{"6:00 PM", "Welcome & Orientation", "Meet the organizers and understand the hackathon rules", "Virtual Meeting"},
			},
		},
		{
			Date:  "October 17, 2025",
			Title: "Main Hackathon Day",
			Type:  "Offline",
			Events: []Event{
				{"8:00 AM", "Registration & Check-in", "Collect your hackathon kit and team badges", "MCKVIE Campus - Main Auditorium"},
				{"9:00 AM", "Opening Ceremony", "Welcome address, sponsor presentations, and problem statement release", "Main Auditorium"},
				{"10:00 AM", "Hackathon Begins!", "Start coding your spooky solutions", "Computer Labs & Designated Areas"},
				{"12:30 PM", "Lunch Break", "Halloween-themed lunch with networking opportunities", "Institute Cafeteria"},
				{"1:30 PM", "Mentorship Sessions", "Get guidance from industry experts and faculty", "Various Rooms"},
				{"4:00 PM", "Final Submission Deadline", "Submit your projects and prepare for presentations", "Online Portal"},
				{"4:30 PM", "Project Presentations", "Present your Halloween hackathon projects to judges", "Main Auditorium"},
				{"6:00 PM", "Judging & Networking", "Judge evaluations and participant networking", "Various Venues"},
				{"8:00 PM", "Results & Closing Ceremony", "Winner announcement and prize distribution", "Main Auditorium"},
			},
		},
	}
}

// Problems lists the four challenge tracks. Titles come from the category
// display names so the pages and the emails agree.
func Problems() []Problem {
	return []Problem{
		{
			ID:          1,
			Category:    hackathon.CategoryWeb,
			Title:       hackathon.CategoryDisplay(hackathon.CategoryWeb),
			Difficulty:  "Beginner",
			Duration:    "6 hours",
			TeamSize:    "2-4 members",
			Description: "Create a haunted web application that showcases innovative UI/UX design with Halloween themes. Perfect for frontend enthusiasts!",
			TechStack:   []string{"React", "JavaScript", "CSS", "HTML"},
			Prizes:      []string{"₹15,000", "₹10,000", "₹5,000"},
		},
		{
			ID:          2,
			Category:    hackathon.CategoryAI,
			Title:       hackathon.CategoryDisplay(hackathon.CategoryAI),
			Difficulty:  "Intermediate",
			Duration:    "8 hours",
			TeamSize:    "2-3 members",
			Description: "Develop an AI-powered solution that can identify and classify spooky objects, sounds, or behaviors using machine learning.",
			TechStack:   []string{"Python", "TensorFlow", "OpenCV", "Scikit-learn"},
			Prizes:      []string{"₹25,000", "₹15,000", "₹8,000"},
		},
		{
			ID:          3,
			Category:    hackathon.CategoryBlockchain,
			Title:       hackathon.CategoryDisplay(hackathon.CategoryBlockchain),
			Difficulty:  "Advanced",
			Duration:    "10 hours",
			TeamSize:    "3-5 members",
			Description: "Create a decentralized application (DApp) for a Halloween-themed marketplace or gaming platform using blockchain technology.",
			TechStack:   []string{"Solidity", "Web3.js", "Ethereum", "Smart Contracts"},
			Prizes:      []string{"₹40,000", "₹25,000", "₹15,000"},
		},
		{
			ID:          4,
			Category:    hackathon.CategoryMobile,
			Title:       hackathon.CategoryDisplay(hackathon.CategoryMobile),
			Difficulty:  "Intermediate",
			Duration:    "8 hours",
			TeamSize:    "2-4 members",
			Description: "Build a cross-platform mobile application with Halloween features like AR filters, spooky games, or social sharing.",
			TechStack:   []string{"React Native", "Flutter", "Firebase", "AR Kit"},
			Prizes:      []string{"₹20,000", "₹12,000", "₹6,000"},
		},
	}
}

func Gallery() []GalleryItem {
	return []GalleryItem{
		{1, "Liluah, Howrah", "Costume", "Code Jam",
			"Join us for a thrilling coding event with spooky themes and creative costumes. Perfect for AI and ML enthusiasts.",
			"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			"Oct 10, 2025", "AI & ML Showcase"},
		{2, "Liluah, Howrah", "Haunted", "Hackathon",
			"Code your way through challenges with a spooky twist during our annual Halloween Hackathon.",
			"https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			"Oct 12, 2025", "Hackathon"},
		{3, "Liluah, Howrah", "AI & ML", "Showcase",
			"Witness cutting-edge innovations in AI and ML as our students showcase their projects.",
			"https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			"Oct 14, 2025", "Showcase"},
	}
}

func Team() []Member {
	return []Member{
		{
			Name:     "Dr. Spooky Singh",
			Role:     "Faculty Coordinator",
			Bio:      "Guiding the spooky spirits of innovation with wisdom and mentorship.",
			Email:    "spooky.singh@mckvie.edu.in",
			Phone:    "+91 98765 43210",
			GitHub:   "https://github.com/spooky-singh",
			LinkedIn: "https://linkedin.com/in/spooky-singh",
			Tags:     []string{"Mentor", "Leader"},
		},
		{
			Name:     "Phantom Patel",
			Role:     "Student Coordinator",
			Bio:      "Ensures smooth hauntings… I mean operations, keeping the hackathon alive and kicking.",
			Email:    "phantom.patel@student.mckvie.edu.in",
			Phone:    "+91 87654 32109",
			GitHub:   "https://github.com/phantom-patel",
			LinkedIn: "https://linkedin.com/in/phantom-patel",
			Tags:     []string{"Organizer", "Manager"},
		},
		{
			Name:     "Ghoulish Gupta",
			Role:     "Technical Lead",
			Bio:      "Architect of eerie algorithms and the mastermind behind the tech stack.",
			Email:    "ghoulish.gupta@mckvie.edu.in",
			Phone:    "+91 76543 21098",
			GitHub:   "https://github.com/ghoulish-gupta",
			LinkedIn: "https://linkedin.com/in/ghoulish-gupta",
			Tags:     []string{"Developer", "Tech"},
		},
	}
}

func ContactPage() Contact {
	organizers := Team()
	for i := range organizers {
		organizers[i].Bio, organizers[i].GitHub, organizers[i].LinkedIn, organizers[i].Tags = "", "", "", nil
	}
	return Contact{
		Organizers: organizers,
		Methods: []ContactMethod{
			{"Email Us", "hackathon@mckvie.edu.in", "Primary communication channel", "mailto:hackathon@mckvie.edu.in"},
			{"Call Us", "+91 98765 43210", "Available 9 AM - 6 PM", "tel:+919876543210"},
			{"Visit Us", "MCKV Institute of Engineering", "243 G.T. Road (North), Liluah, Howrah - 711204", "https://maps.google.com"},
			{"Website", "www.mckvie.edu.in", "Official institute website", "https://www.mckvie.edu.in"},
		},
		Social: []SocialLink{
			{"GitHub", "https://github.com/mckvie-hackathon"},
			{"LinkedIn", "https://linkedin.com/school/mckvie"},
			{"Instagram", "https://instagram.com/mckvie_official"},
			{"Twitter", "https://twitter.com/mckvie_official"},
		},
	}
}
