// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/sanaa/pkg/pointer"
	"github.com/taibuivan/sanaa/pkg/uuid"
)

// # Reference Dataset

// Seed loads the reference categories and artisans into an empty store.
//
// It is idempotent: a store that already holds data is left untouched.
func Seed(ctx context.Context, seeder Seeder, logger *slog.Logger) error {
	categories := SeedCategories()
	artisans := SeedArtisans()

	inserted, err := seeder.Load(ctx, categories, artisans)
	if err != nil {
		return fmt.Errorf("directory: seed failed: %w", err)
	}

	if !inserted {
		logger.Info("directory_seed_skipped", slog.String("reason", "store not empty"))
		return nil
	}

	logger.Info("directory_seeded",
		slog.Int("categories", len(categories)),
		slog.Int("artisans", len(artisans)),
	)
	return nil
}

// SeedCategories returns the four reference categories. Their ids are stable.
func SeedCategories() []*Category {
	return []*Category{
		{
			ID:            "cooking",
			NameEn:        "Traditional Cooking",
			NameFr:        "Cuisine Traditionnelle",
			NameAr:        "الطبخ التقليدي",
			DescriptionEn: pointer.To("Authentic Algerian cuisine and traditional dishes"),
			DescriptionFr: pointer.To("Cuisine algérienne authentique et plats traditionnels"),
			DescriptionAr: pointer.To("المطبخ الجزائري الأصيل والأطباق التقليدية"),
			Icon:          "cooking",
		},
		{
			ID:            "sewing",
			NameEn:        "Sewing & Tailoring",
			NameFr:        "Couture & Retouche",
			NameAr:        "الخياطة والتفصيل",
			DescriptionEn: pointer.To("Traditional dresses and modern clothing alterations"),
			DescriptionFr: pointer.To("Robes traditionnelles et retouches modernes"),
			DescriptionAr: pointer.To("الفساتين التقليدية وتعديل الملابس الحديثة"),
			Icon:          "sewing",
		},
		{
			ID:            "repairs",
			NameEn:        "Repairs & Maintenance",
			NameFr:        "Réparations & Maintenance",
			NameAr:        "الإصلاح والصيانة",
			DescriptionEn: pointer.To("Home repairs, plumbing, electrical work"),
			DescriptionFr: pointer.To("Réparations domestiques, plomberie, électricité"),
			DescriptionAr: pointer.To("إصلاحات منزلية، سباكة، كهرباء"),
			Icon:          "repairs",
		},
		{
			ID:            "cleaning",
			NameEn:        "Cleaning Services",
			NameFr:        "Services de Nettoyage",
			NameAr:        "خدمات التنظيف",
			DescriptionEn: pointer.To("Professional home and office cleaning"),
			DescriptionFr: pointer.To("Nettoyage professionnel de maisons et bureaux"),
			DescriptionAr: pointer.To("تنظيف احترافي للمنازل والمكاتب"),
			Icon:          "cleaning",
		},
	}
}

// SeedArtisans returns the six reference artisans with freshly generated ids.
func SeedArtisans() []*Artisan {
	return []*Artisan{
		{
			ID:              uuid.New(),
			NameEn:          "Fatima Benali",
			NameFr:          "Fatima Benali",
			NameAr:          "فاطمة بن علي",
			CategoryID:      "cooking",
			BioEn:           "Specialist in traditional Algerian cuisine with over 20 years of experience. Known for authentic couscous, tajines, and traditional pastries.",
			BioFr:           "Spécialiste de la cuisine algérienne traditionnelle avec plus de 20 ans d'expérience. Reconnue pour le couscous authentique, les tajines et les pâtisseries traditionnelles.",
			BioAr:           "متخصصة في المطبخ الجزائري التقليدي مع أكثر من 20 عامًا من الخبرة. معروفة بالكسكس الأصيل والطواجن والحلويات التقليدية.",
			ServicesEn:      []string{"Couscous", "Tajines", "Traditional Pastries", "Wedding Catering"},
			ServicesFr:      []string{"Couscous", "Tajines", "Pâtisseries Traditionnelles", "Traiteur Mariage"},
			ServicesAr:      []string{"كسكس", "طواجن", "حلويات تقليدية", "خدمات الأعراس"},
			Location:        "Algiers",
			Phone:           "+213 555 123 456",
			Email:           pointer.To("fatima.benali@example.com"),
			PriceRange:      "$$",
			Rating:          4.8,
			ReviewCount:     127,
			ProfileImage:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Fatima",
			PortfolioImages: []string{
				"https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=600",
				"https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=600",
			},
			Featured: FeaturedYes,
		},
		{
			ID:              uuid.New(),
			NameEn:          "Amina Khelifi",
			NameFr:          "Amina Khelifi",
			NameAr:          "أمينة خليفي",
			CategoryID:      "sewing",
			BioEn:           "Expert seamstress specializing in traditional Algerian dresses and modern alterations. Creates beautiful kaftans and custom clothing.",
			BioFr:           "Couturière experte spécialisée dans les robes algériennes traditionnelles et les retouches modernes. Crée de magnifiques kaftans et vêtements sur mesure.",
			BioAr:           "خياطة خبيرة متخصصة في الفساتين الجزائرية التقليدية والتعديلات الحديثة. تصنع قفاطين جميلة وملابس مخصصة.",
			ServicesEn:      []string{"Traditional Dresses", "Kaftans", "Alterations", "Custom Designs"},
			ServicesFr:      []string{"Robes Traditionnelles", "Kaftans", "Retouches", "Créations Sur Mesure"},
			ServicesAr:      []string{"فساتين تقليدية", "قفاطين", "تعديلات", "تصاميم مخصصة"},
			Location:        "Oran",
			Phone:           "+213 555 234 567",
			Email:           pointer.To("amina.khelifi@example.com"),
			PriceRange:      "$$$",
			Rating:          4.9,
			ReviewCount:     89,
			ProfileImage:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Amina",
			PortfolioImages: []string{
				"https://images.unsplash.com/photo-1558769132-cb1aea9c6111?w=600",
				"https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=600",
			},
			Featured: FeaturedYes,
		},
		{
			ID:              uuid.New(),
			NameEn:          "Karim Mansouri",
			NameFr:          "Karim Mansouri",
			NameAr:          "كريم منصوري",
			CategoryID:      "repairs",
			BioEn:           "Professional handyman with expertise in plumbing, electrical work, and general home repairs. Reliable and efficient service.",
			BioFr:           "Bricoleur professionnel avec expertise en plomberie, électricité et réparations générales. Service fiable et efficace.",
			BioAr:           "فني محترف خبير في السباكة والكهرباء والإصلاحات المنزلية العامة. خدمة موثوقة وفعالة.",
			ServicesEn:      []string{"Plumbing", "Electrical Work", "Home Repairs", "Appliance Installation"},
			ServicesFr:      []string{"Plomberie", "Électricité", "Réparations", "Installation d'Appareils"},
			ServicesAr:      []string{"سباكة", "كهرباء", "إصلاحات منزلية", "تركيب الأجهزة"},
			Location:        "Constantine",
			Phone:           "+213 555 345 678",
			PriceRange:      "$$",
			Rating:          4.7,
			ReviewCount:     156,
			ProfileImage:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Karim",
			PortfolioImages: []string{
				"https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=600",
			},
			Featured: FeaturedNo,
		},
		{
			ID:              uuid.New(),
			NameEn:          "Salma Bouazza",
			NameFr:          "Salma Bouazza",
			NameAr:          "سلمى بوعزة",
			CategoryID:      "cleaning",
			BioEn:           "Professional cleaning specialist providing thorough and eco-friendly cleaning services for homes and offices.",
			BioFr:           "Spécialiste du nettoyage professionnel offrant des services de nettoyage minutieux et écologiques pour maisons et bureaux.",
			BioAr:           "متخصصة تنظيف محترفة توفر خدمات تنظيف شاملة وصديقة للبيئة للمنازل والمكاتب.",
			ServicesEn:      []string{"Deep Cleaning", "Regular Maintenance", "Office Cleaning", "Move-in/Move-out"},
			ServicesFr:      []string{"Nettoyage en Profondeur", "Entretien Régulier", "Nettoyage de Bureau", "Déménagement"},
			ServicesAr:      []string{"تنظيف عميق", "صيانة منتظمة", "تنظيف المكاتب", "تنظيف عند الانتقال"},
			Location:        "Annaba",
			Phone:           "+213 555 456 789",
			Email:           pointer.To("salma.bouazza@example.com"),
			PriceRange:      "$",
			Rating:          4.6,
			ReviewCount:     98,
			ProfileImage:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Salma",
			PortfolioImages: []string{},
			Featured:        FeaturedNo,
		},
		{
			ID:              uuid.New(),
			NameEn:          "Nadia Hamidi",
			NameFr:          "Nadia Hamidi",
			NameAr:          "نادية حميدي",
			CategoryID:      "cooking",
			BioEn:           "Traditional pastry chef specializing in Algerian sweets and desserts. Perfect for special occasions and celebrations.",
			BioFr:           "Pâtissière traditionnelle spécialisée dans les douceurs et desserts algériens. Parfait pour les occasions spéciales.",
			BioAr:           "صانعة حلويات تقليدية متخصصة في الحلويات الجزائرية. مثالية للمناسبات الخاصة والاحتفالات.",
			ServicesEn:      []string{"Traditional Sweets", "Wedding Cakes", "Baklava", "Makroud"},
			ServicesFr:      []string{"Douceurs Traditionnelles", "Gâteaux de Mariage", "Baklava", "Makroud"},
			ServicesAr:      []string{"حلويات تقليدية", "كعك الأعراس", "بقلاوة", "مقروض"},
			Location:        "Blida",
			Phone:           "+213 555 567 890",
			PriceRange:      "$$",
			Rating:          4.9,
			ReviewCount:     143,
			ProfileImage:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Nadia",
			PortfolioImages: []string{
				"https://images.unsplash.com/photo-1587241321921-91a834d82b01?w=600",
				"https://images.unsplash.com/photo-1486427944299-d1955d23e34d?w=600",
			},
			Featured: FeaturedYes,
		},
		{
			ID:              uuid.New(),
			NameEn:          "Leila Meziane",
			NameFr:          "Leila Meziane",
			NameAr:          "ليلى مزيان",
			CategoryID:      "sewing",
			BioEn:           "Young talented seamstress offering modern alterations and custom clothing at affordable prices.",
			BioFr:           "Jeune couturière talentueuse offrant des retouches modernes et vêtements sur mesure à prix abordables.",
			BioAr:           "خياطة شابة موهوبة تقدم تعديلات حديثة وملابس مخصصة بأسعار معقولة.",
			ServicesEn:      []string{"Alterations", "Custom Clothing", "Repairs", "Embroidery"},
			ServicesFr:      []string{"Retouches", "Vêtements Sur Mesure", "Réparations", "Broderie"},
			ServicesAr:      []string{"تعديلات", "ملابس مخصصة", "إصلاحات", "تطريز"},
			Location:        "Tlemcen",
			Phone:           "+213 555 678 901",
			PriceRange:      "$",
			Rating:          4.5,
			ReviewCount:     54,
			ProfileImage:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Leila",
			PortfolioImages: []string{},
			Featured:        FeaturedNo,
		},
	}
}
