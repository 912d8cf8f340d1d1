package posts

// Template sources use text/template syntax against the placeholder map built
// by listing.Facts.Vars. Every template ends with the same availability and
// move-in terms so pricing copy can only drift in one place.

const rooms = "1 Triple room OR 1 Double room available immediately!\n"

const terms = "Rent: {{.rent}}/month\n" +
	"Due at signing: {{.deposit}} deposit + {{.first_month}} first month + {{.last_month}} last month = {{.total_due_at_signing}} total\n" +
	"Virtual tour: {{.virtual_tour}}\n" +
	"DM to apply or set up a tour!"

var mainTemplates = map[Theme][]string{
	CampusProximity: {
		"{{.address}} – {{.campus}} Students Welcome!\n" +
			"Slide through to tour this prime location gem {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Great location on the beach, walk to {{.campus}}\n" +
			terms,
		"{{.campus}} STUDENTS! Your dream apartment is here!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Walking distance to {{.campus}} campus\n" +
			"Great location on the beach\n" +
			terms,
		"Roll out of bed and walk to {{.campus}}!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"No more long commutes - everything is walkable!\n" +
			"Great location on the beach\n" +
			terms,
		"{{.campus}} LIFE just got better!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Steps away from campus + beach vibes = perfect student life!\n" +
			terms,
		"{{.campus}} STUDENTS: Your perfect spot is here!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Prime location: Beach + {{.campus}} walking distance\n" +
			terms,
	},
	BeachLifestyle: {
		"{{.address}} – Oceanfront Unit Available!\n" +
			"Slide through to tour this oceanfront gem {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Great location on the beach with stunning sea views\n" +
			terms,
		"OCEANFRONT LIVING for {{.campus}} students!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Wake up to ocean views every day!\n" +
			terms,
		"Surf, study, repeat at {{.address}}!\n" +
			"{{.bedrooms}} bed / {{.bathrooms}} bath oceanfront unit\n" +
			rooms +
			"Beach access + {{.campus}} proximity = student paradise!\n" +
			terms,
		"Beach vibes meet {{.campus}} life!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Perfect for students who want the ultimate coastal experience!\n" +
			terms,
		"Sunset views from your {{.campus}} apartment!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Oceanfront living with easy campus access!\n" +
			terms,
	},
	StudentCommunity: {
		"{{.address}} – Student Community Living!\n" +
			"Slide through to tour this student-friendly gem {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Join the {{.campus}} community in great beach location\n" +
			terms,
		"Join the {{.campus}} community at {{.address}}!\n" +
			"{{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Connect with fellow students in this vibrant beach community!\n" +
			terms,
		"{{.campus}} STUDENT LIFE at its finest!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Join the best student community in Isla Vista!\n" +
			terms,
		"{{.campus}} FRIENDSHIP starts here!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Build lasting connections in this student-friendly beach community!\n" +
			terms,
		"{{.campus}} COMMUNITY VIBES!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Experience the best of student life in this beachfront community!\n" +
			terms,
	},
	Affordability: {
		"{{.address}} – Affordable Student Housing!\n" +
			"Slide through to tour this budget-friendly gem {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Student-friendly pricing in great beach location\n" +
			terms,
		"BUDGET-FRIENDLY {{.campus}} living!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Quality housing that won't break the bank!\n" +
			terms,
		"Perfect balance: Location + Affordability!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Great value for {{.campus}} students in prime beach location!\n" +
			terms,
		"Student budget approved! {{.address}}\n" +
			"{{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Affordable luxury for {{.campus}} students!\n" +
			terms,
		"Best value for {{.campus}} students!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Premium location at student-friendly prices!\n" +
			terms,
	},
	Convenience: {
		"{{.address}} – Convenient Student Living!\n" +
			"Slide through to tour this convenient location gem {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Everything within walking distance, great beach location\n" +
			terms,
		"Everything within walking distance!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"{{.campus}}, beach, shops, food - all nearby!\n" +
			terms,
		"Convenience meets {{.campus}} life!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Walk to everything you need!\n" +
			terms,
		"No car needed! Everything is walkable!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"{{.campus}}, beach, restaurants, shopping - all steps away!\n" +
			terms,
		"Ultimate convenience for {{.campus}} students!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Location that makes student life easy!\n" +
			terms,
	},
	MoveInReady: {
		"{{.address}} – Move-In Ready!\n" +
			"Slide through to tour this ready-to-go gem {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Available now in great beach location\n" +
			terms,
		"Move-in ready for {{.campus}} students!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"No waiting - your new home is ready now!\n" +
			terms,
		"Ready for immediate move-in!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Perfect for {{.campus}} students who need housing now!\n" +
			terms,
		"Available immediately for {{.campus}} students!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"No delays - move in when you're ready!\n" +
			terms,
		"Instant availability for {{.campus}} students!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Your new home is waiting for you!\n" +
			terms,
	},
	NeighborhoodHighlights: {
		"{{.address}} – Isla Vista Living!\n" +
			"Slide through to tour this IV gem {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Heart of student life in great beach location\n" +
			terms,
		"Experience the best of Isla Vista!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"The ultimate {{.campus}} student experience!\n" +
			terms,
		"IV LIFE at its finest!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Prime location in the heart of student life!\n" +
			terms,
		"Premium Isla Vista location!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"The best spot for {{.campus}} students in IV!\n" +
			terms,
		"IV living redefined for {{.campus}} students!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Experience the magic of Isla Vista!\n" +
			terms,
	},
}

var fallbackTemplates = map[Theme][]string{
	CampusProximity: {
		"{{.campus}} students! Your perfect spot is here!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Walking distance to {{.campus}} campus\n" +
			"Great location on the beach\n" +
			terms,
		"Roll out of bed and walk to {{.campus}}!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"No more long commutes - everything is walkable!\n" +
			"Great location on the beach\n" +
			terms,
		"{{.campus}} LIFE just got better!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Steps away from campus + beach vibes = perfect student life!\n" +
			terms,
	},
	BeachLifestyle: {
		"OCEANFRONT LIVING for {{.campus}} students!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Wake up to ocean views every day!\n" +
			terms,
		"Surf, study, repeat at {{.address}}!\n" +
			"{{.bedrooms}} bed / {{.bathrooms}} bath oceanfront unit\n" +
			rooms +
			"Beach access + {{.campus}} proximity = student paradise!\n" +
			terms,
		"Beach vibes meet {{.campus}} life!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Perfect for students who want the ultimate coastal experience!\n" +
			terms,
	},
	StudentCommunity: {
		"Join the {{.campus}} community at {{.address}}!\n" +
			"{{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Connect with fellow students in this vibrant beach community!\n" +
			terms,
		"{{.campus}} STUDENT LIFE at its finest!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Join the best student community in Isla Vista!\n" +
			terms,
		"{{.campus}} FRIENDSHIP starts here!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Build lasting connections in this student-friendly beach community!\n" +
			terms,
	},
	Affordability: {
		"BUDGET-FRIENDLY {{.campus}} living!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Quality housing that won't break the bank!\n" +
			terms,
		"Perfect balance: Location + Affordability!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Great value for {{.campus}} students in prime beach location!\n" +
			terms,
		"Student budget approved! {{.address}}\n" +
			"{{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Affordable luxury for {{.campus}} students!\n" +
			terms,
	},
	Convenience: {
		"Everything within walking distance!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"{{.campus}}, beach, shops, food - all nearby!\n" +
			terms,
		"Convenience meets {{.campus}} life!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Walk to everything you need!\n" +
			terms,
		"No car needed! Everything is walkable!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"{{.campus}}, beach, restaurants, shopping - all steps away!\n" +
			terms,
	},
	MoveInReady: {
		"Move-in ready for {{.campus}} students!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"No waiting - your new home is ready now!\n" +
			terms,
		"Ready for immediate move-in!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Perfect for {{.campus}} students who need housing now!\n" +
			terms,
		"Available immediately for {{.campus}} students!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"No delays - move in when you're ready!\n" +
			terms,
	},
	NeighborhoodHighlights: {
		"Experience the best of Isla Vista!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"The ultimate {{.campus}} student experience!\n" +
			terms,
		"IV LIFE at its finest!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"Prime location in the heart of student life!\n" +
			terms,
		"Premium Isla Vista location!\n" +
			"{{.address}} - {{.bedrooms}} bed / {{.bathrooms}} bath\n" +
			rooms +
			"The best spot for {{.campus}} students in IV!\n" +
			terms,
	},
}
