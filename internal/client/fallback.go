package client

import (
	"github.com/lib/pq"
	"github.com/oubasys/portfolio/internal/models"
)

// Built-in dataset rendered when the backend is unreachable or the static
// provider is selected. Mirrors the site's shipped content.

var fallbackProfile = models.Profile{
	Name:      "Oussama Oubaha",
	Title:     "Étudiant en Génie Informatique",
	Subtitle:  "À la recherche d'un stage de fin d'études",
	Email:     "oussama.oubaha24@gmail.com",
	Location:  "Maroc",
	AboutText: "Étudiant en 2ème année de génie informatique, je suis passionné par la conception et le développement de solutions logicielles innovantes.",
}

var fallbackSkills = []models.Skill{
	{Name: "C/C++", Category: "Développement", Icon: models.IconCode, Order: 1},
	{Name: "Java", Category: "Développement", Icon: models.IconCode, Order: 2},
	{Name: "Python", Category: "Développement", Icon: models.IconCode, Order: 3},
	{Name: "PHP (Laravel)", Category: "Développement", Icon: models.IconCode, Order: 4},
	{Name: "React.js", Category: "Web", Icon: models.IconGlobe, Order: 5},
	{Name: "Tailwind CSS", Category: "Web", Icon: models.IconGlobe, Order: 6},
	{Name: "HTML/CSS", Category: "Web", Icon: models.IconGlobe, Order: 7},
	{Name: "MySQL", Category: "Data", Icon: models.IconDatabase, Order: 8},
	{Name: "NoSQL", Category: "Data", Icon: models.IconDatabase, Order: 9},
	{Name: "Big Data", Category: "Data", Icon: models.IconDatabase, Order: 10},
	{Name: "Machine Learning", Category: "Data", Icon: models.IconDatabase, Order: 11},
	{Name: "Linux Ubuntu", Category: "Systèmes", Icon: models.IconServer, Order: 12},
	{Name: "Réseaux", Category: "Systèmes", Icon: models.IconServer, Order: 13},
	{Name: "Sécurité", Category: "Systèmes", Icon: models.IconServer, Order: 14},
}

var fallbackExperiences = []models.Experience{
	{
		Role:     "Développeur Web Front-end",
		Company:  "Maktoub-Tech",
		Location: "Fès, Maroc",
		Period:   "2024",
		Type:     "Stage",
		Missions: pq.StringArray{
			"Développement d'une plateforme E-commerce complète et performante",
			"Utilisation de React.js et Tailwind CSS pour l'interface utilisateur",
			"Conception UX design centrée utilisateur pour une navigation intuitive",
			"Optimisation responsive pour une expérience parfaite sur tous les appareils",
		},
	},
	{
		Role:        "DUT en Conception et Développement des Logiciels",
		Company:     "EST d'Oujda",
		Location:    "Oujda, Maroc",
		Period:      "2024 – 2026",
		Type:        models.TypeEducation,
		Description: "Formation approfondie en génie logiciel couvrant la programmation, les bases de données, le développement web et les systèmes d'information.",
	},
}

var fallbackProjects = []models.Project{}
