package content

import (
	"triptogether/internal/landing"
	"triptogether/internal/model"
)

var russian = Content{
	Locale: "ru",
	Copy: Copy{
		Brand:     "Trip Together",
		PageTitle: "Trip Together - образовательные поездки для студентов",
		Nav: map[landing.Section]string{
			landing.SectionHome:         "Главная",
			landing.SectionPrograms:     "Программы",
			landing.SectionGallery:      "Галерея",
			landing.SectionTestimonials: "Отзывы",
			landing.SectionAbout:        "О нас",
			landing.SectionDocuments:    "Документы",
			landing.SectionContact:      "Контакты",
		},

		HeroTitle:    []string{"Образовательные поездки", "для студентов"},
		HeroSubtitle: "Откройте мир новых знаний и впечатлений. Мы организуем образовательные поездки с полным сопровождением",
		HeroCTA:      "Выбрать программу",

		ProgramsTitle:    "Наши программы",
		ProgramsSubtitle: "Тщательно продуманные образовательные маршруты с проверенными партнёрами",
		LearnMore:        "Подробнее",

		GalleryTitle:    "Галерея",
		GallerySubtitle: "Моменты наших путешествий",

		TestimonialsTitle:    "Отзывы студентов",
		TestimonialsSubtitle: "Что говорят наши участники",

		AboutTitle:    "О нас",
		AboutSubtitle: "Trip Together организует образовательные поездки для студентов с 2015 года",

		DocumentsTitle:     "Загрузка документов",
		DocumentsSubtitle:  "Загрузите необходимые документы для поездки",
		DocumentsCardTitle: "Необходимые документы",
		DocumentsCardText:  "Загрузите копии ваших документов",
		DocumentsSubmit:    "Подтвердить выбор",
		DocumentSlots: []DocumentSlot{
			{Kind: landing.KindPassport, Label: "Паспорт", Icon: "lucide:file-text"},
			{Kind: landing.KindVisa, Label: "Виза", Icon: "lucide:file-check"},
			{Kind: landing.KindInsurance, Label: "Страховка", Icon: "lucide:shield-check"},
		},
		UploadToastTitle:    "Документ загружен",
		UploadToastTemplate: "%s успешно добавлен",

		ContactTitle:       "Свяжитесь с нами",
		ContactSubtitle:    "Остались вопросы? Мы всегда готовы помочь",
		NameLabel:          "Имя",
		NamePlaceholder:    "Ваше имя",
		EmailLabel:         "Email",
		EmailPlaceholder:   "your@email.com",
		PhoneLabel:         "Телефон",
		PhonePlaceholder:   "+7 (___) ___-__-__",
		MessageLabel:       "Сообщение",
		MessagePlaceholder: "Ваш вопрос...",
		SendMessage:        "Отправить сообщение",
		ContactToastTitle:  "Сообщение отправлено",
		ContactToastText:   "Мы скоро с вами свяжемся",
		Contacts: ContactDetails{
			Email:   contacts.Email,
			Phone:   contacts.Phone,
			Address: "Москва, ул. Тверская, 10",
		},

		Footer: "© 2024 Trip Together. Все права защищены.",
	},
	Programs: []model.Program{
		{
			Title:       "Европейские столицы",
			Duration:    "14 дней",
			Price:       "120 000 ₽",
			Description: "Париж, Берлин, Прага с образовательной программой",
			Image:       imageEurope,
			Features:    []string{"Лекции", "Экскурсии", "Проживание", "Питание"},
		},
		{
			Title:       "Летняя школа в Оксфорде",
			Duration:    "21 день",
			Price:       "200 000 ₽",
			Description: "Интенсивное обучение в одном из лучших университетов мира",
			Image:       imageOxford,
			Features:    []string{"Курсы", "Сертификат", "Проживание", "Наставничество"},
		},
		{
			Title:       "Культурный обмен в Испании",
			Duration:    "10 дней",
			Price:       "90 000 ₽",
			Description: "Изучение испанского языка и культуры в Барселоне и Мадриде",
			Image:       imageSpain,
			Features:    []string{"Языковые курсы", "Экскурсии", "Проживание", "Активности"},
		},
	},
	Gallery: []model.GalleryImage{
		{Image: imageEurope, Alt: "Галерея 1"},
		{Image: imageOxford, Alt: "Галерея 2"},
		{Image: imageSpain, Alt: "Галерея 3"},
	},
	Testimonials: []model.Testimonial{
		{
			Name:        "Анна Соколова",
			Affiliation: "МГУ, 3 курс",
			Text:        "Поездка в Оксфорд полностью изменила мой взгляд на образование. Потрясающий опыт!",
			Rating:      5,
		},
		{
			Name:        "Дмитрий Петров",
			Affiliation: "СПбГУ, 2 курс",
			Text:        "Отлично организованная программа, всё продумано до мелочей. Обязательно поеду ещё.",
			Rating:      5,
		},
		{
			Name:        "Мария Иванова",
			Affiliation: "ВШЭ, 4 курс",
			Text:        "Trip Together помогли с визой и всеми документами. Очень благодарна за поддержку!",
			Rating:      5,
		},
	},
	About: []model.AboutStat{
		{Icon: "lucide:users", Title: "500+ студентов", Text: "Студенты со всей страны доверяют нашим программам"},
		{Icon: "lucide:globe", Title: "15 стран", Text: "Образовательные маршруты по Европе и не только"},
		{Icon: "lucide:shield", Title: "Полная поддержка", Text: "Помощь с документами, визой и поддержка 24/7"},
	},
}
