package recommendations

import "github.com/orensade/Intub/internal/assessment"

// fallbackExplanation is returned when no keyword fragment matches a concern.
const fallbackExplanation = "This finding may affect airway management. Review it together with the full clinical assessment."

type keywordExplanation struct {
	keyword     string
	explanation string
}

// concernExplanations maps lowercase keyword fragments to clinical
// explanations. Matching is first-hit in table order, so more specific
// fragments must come before the general ones they contain ("adequate mouth"
// before "mouth opening").
var concernExplanations = []keywordExplanation{
	{"limited neck", "Restricted neck extension can prevent optimal head positioning and may limit the view of the glottis during laryngoscopy."},
	{"neck mobility", "Good neck mobility allows the sniffing position, which aligns the airway axes for direct laryngoscopy."},
	{"mallampati", "A higher Mallampati class means fewer visible oropharyngeal structures, which correlates with a more difficult laryngoscopic view."},
	{"thyromental", "A short thyromental distance suggests limited submandibular space to displace the tongue during laryngoscopy."},
	{"adequate mouth", "An adequate mouth opening gives good working access for the laryngoscope blade and tube placement."},
	{"mouth opening", "A restricted mouth opening reduces the space available to insert the laryngoscope and visualize the airway."},
	{"normal airway", "No anatomical features predictive of difficult intubation were identified on the submitted views."},
	{"anatomical variation", "Anatomical variations can alter the expected laryngoscopic view and warrant individualized airway planning."},
	{"video laryngoscope", "Video laryngoscopy improves glottic visualization when a difficult direct view is anticipated."},
	{"airway cart", "A stocked difficult airway cart keeps rescue devices immediately at hand if the primary technique fails."},
	{"awake intubation", "Awake intubation preserves spontaneous breathing and airway tone while the airway is secured."},
	{"backup", "Having backup airway equipment prepared shortens the response time if the first-line plan fails."},
	{"monitor", "Close monitoring allows early detection of deterioration and timely escalation of the airway plan."},
}

// concernRecommendations maps canonical concern labels to specific
// recommendations. Lookup is exact string match; observational phrasings such
// as "Limited neck extension observed" intentionally have no entry and
// contribute only a general recommendation.
var concernRecommendations = map[string]Recommendation{
	"Limited mouth opening": {
		Title:    "Plan for restricted oral access",
		Priority: PriorityHigh,
		Actions: []string{
			"Measure inter-incisor distance before induction",
			"Select a low-profile or hyperangulated blade",
			"Keep supraglottic airway devices within reach",
		},
	},
	"Reduced thyromental distance": {
		Title:    "Anticipate an anterior larynx",
		Priority: PriorityHigh,
		Actions: []string{
			"Optimize head and neck positioning before the first attempt",
			"Prepare a bougie or stylet for the first pass",
			"Consider external laryngeal manipulation",
		},
	},
	"Mallampati score may be elevated": {
		Title:    "Re-examine the oropharynx",
		Priority: PriorityMedium,
		Actions: []string{
			"Repeat the Mallampati assessment seated and upright",
			"Correlate with mouth opening and neck mobility findings",
		},
	},
	"Consider backup airway equipment": {
		Title:    "Stage backup airway equipment",
		Priority: PriorityMedium,
		Actions: []string{
			"Place a second-generation supraglottic airway on the cart",
			"Verify suction and oxygen delivery before induction",
		},
	},
	"Consider video laryngoscope": {
		Title:    "Use video laryngoscopy first line",
		Priority: PriorityHigh,
		Actions: []string{
			"Check the video laryngoscope battery and screen",
			"Pair with a rigid stylet shaped to the blade curvature",
		},
	},
	"Have difficult airway cart ready": {
		Title:    "Position the difficult airway cart",
		Priority: PriorityHigh,
		Actions: []string{
			"Bring the cart into the room before induction",
			"Confirm contents against the difficult airway checklist",
			"Brief the team on the rescue sequence",
		},
	},
	"Consider awake intubation approach": {
		Title:    "Evaluate awake intubation",
		Priority: PriorityHigh,
		Actions: []string{
			"Discuss the awake technique and topicalization plan",
			"Prepare the flexible bronchoscope and oxygen insufflation",
			"Ensure a surgical airway backup is identified",
		},
	},
}

// generalRecommendations holds the one always-present recommendation per risk
// category.
var generalRecommendations = map[string]Recommendation{
	assessment.CategoryDifficult: {
		Title:    "Difficult airway anticipated",
		Priority: PriorityHigh,
		Actions: []string{
			"Ensure experienced anesthesia support is present",
			"Prepare difficult airway equipment before induction",
			"Formulate and brief a staged backup airway plan",
			"Consider securing the airway awake",
		},
	},
	assessment.CategoryModerate: {
		Title:    "Proceed with additional precautions",
		Priority: PriorityMedium,
		Actions: []string{
			"Have backup airway devices checked and available",
			"Optimize patient positioning before induction",
			"Assign a team member to monitor for early difficulty",
		},
	},
	assessment.CategoryEasy: {
		Title:    "Standard airway management",
		Priority: PriorityLow,
		Actions: []string{
			"Follow routine induction and intubation protocol",
			"Keep standard rescue equipment available",
		},
	},
}
