package content

import (
	"triptogether/internal/landing"
	"triptogether/internal/model"
)

const (
	imageEurope = "71d3a957-e18d-47f7-8940-6a100a57403c.jpg"
	imageOxford = "3fa02154-f5d5-4bed-b629-3d6d0db2eeda.jpg"
	imageSpain  = "7ab14690-2f1c-4e79-bee2-cc9899d8d5e2.jpg"
)

var contacts = ContactDetails{
	Email: "info@triptogether.com",
	Phone: "+7 (495) 123-45-67",
}

var english = Content{
	Locale: "en",
	Copy: Copy{
		Brand:     "Trip Together",
		PageTitle: "Trip Together - Educational Travel for Students",
		Nav: map[landing.Section]string{
			landing.SectionHome:         "Home",
			landing.SectionPrograms:     "Programs",
			landing.SectionGallery:      "Gallery",
			landing.SectionTestimonials: "Testimonials",
			landing.SectionAbout:        "About",
			landing.SectionDocuments:    "Documents",
			landing.SectionContact:      "Contact",
		},

		HeroTitle:    []string{"Educational Travel", "for Students"},
		HeroSubtitle: "Discover a world of new knowledge and experiences. We organize educational trips with full support",
		HeroCTA:      "Choose Program",

		ProgramsTitle:    "Our Programs",
		ProgramsSubtitle: "Carefully designed educational routes with trusted partners",
		LearnMore:        "Learn More",

		GalleryTitle:    "Gallery",
		GallerySubtitle: "Moments from our journeys",

		TestimonialsTitle:    "Student Testimonials",
		TestimonialsSubtitle: "What our participants say",

		AboutTitle:    "About Us",
		AboutSubtitle: "Trip Together has been organizing educational trips for students since 2015",

		DocumentsTitle:     "Upload Documents",
		DocumentsSubtitle:  "Upload the necessary documents for your trip",
		DocumentsCardTitle: "Required Documents",
		DocumentsCardText:  "Upload copies of your documents",
		DocumentsSubmit:    "Confirm selection",
		DocumentSlots: []DocumentSlot{
			{Kind: landing.KindPassport, Label: "Passport", Icon: "lucide:file-text"},
			{Kind: landing.KindVisa, Label: "Visa", Icon: "lucide:file-check"},
			{Kind: landing.KindInsurance, Label: "Insurance", Icon: "lucide:shield-check"},
		},
		UploadToastTitle:    "Document uploaded",
		UploadToastTemplate: "%s successfully added",

		ContactTitle:       "Contact Us",
		ContactSubtitle:    "Have questions? We're here to help",
		NameLabel:          "Name",
		NamePlaceholder:    "Your name",
		EmailLabel:         "Email",
		EmailPlaceholder:   "your@email.com",
		PhoneLabel:         "Phone",
		PhonePlaceholder:   "+7 (___) ___-__-__",
		MessageLabel:       "Message",
		MessagePlaceholder: "Your question...",
		SendMessage:        "Send Message",
		ContactToastTitle:  "Message sent",
		ContactToastText:   "We will get back to you soon",
		Contacts: ContactDetails{
			Email:   contacts.Email,
			Phone:   contacts.Phone,
			Address: "Moscow, Tverskaya St., 10",
		},

		Footer: "© 2024 Trip Together. All rights reserved.",
	},
	Programs: []model.Program{
		{
			Title:       "European Capitals",
			Duration:    "14 days",
			Price:       "$1,200",
			Description: "Visit Paris, Berlin, Prague with educational program",
			Image:       imageEurope,
			Features:    []string{"Lectures", "Excursions", "Accommodation", "Meals"},
		},
		{
			Title:       "Oxford Summer School",
			Duration:    "21 days",
			Price:       "$2,000",
			Description: "Intensive learning at one of the world's best universities",
			Image:       imageOxford,
			Features:    []string{"Courses", "Certificate", "Accommodation", "Mentorship"},
		},
		{
			Title:       "Cultural Exchange in Spain",
			Duration:    "10 days",
			Price:       "$900",
			Description: "Study Spanish language and culture in Barcelona and Madrid",
			Image:       imageSpain,
			Features:    []string{"Language Courses", "Excursions", "Accommodation", "Activities"},
		},
	},
	Gallery: []model.GalleryImage{
		{Image: imageEurope, Alt: "Gallery 1"},
		{Image: imageOxford, Alt: "Gallery 2"},
		{Image: imageSpain, Alt: "Gallery 3"},
	},
	Testimonials: []model.Testimonial{
		{
			Name:        "Anna Sokolova",
			Affiliation: "MSU, 3rd year",
			Text:        "The Oxford trip completely changed my perspective on education. Amazing experience!",
			Rating:      5,
		},
		{
			Name:        "Dmitry Petrov",
			Affiliation: "SPbSU, 2nd year",
			Text:        "Perfectly organized program, everything thought through. Will definitely go again.",
			Rating:      5,
		},
		{
			Name:        "Maria Ivanova",
			Affiliation: "HSE, 4th year",
			Text:        "Trip Together helped with visa and all documents. Very grateful for the support!",
			Rating:      5,
		},
	},
	About: []model.AboutStat{
		{Icon: "lucide:users", Title: "500+ Students", Text: "Students from all over the country trust our programs"},
		{Icon: "lucide:globe", Title: "15 Countries", Text: "Educational routes across Europe and beyond"},
		{Icon: "lucide:shield", Title: "Full Support", Text: "Assistance with documents, visa, and 24/7 support"},
	},
}
