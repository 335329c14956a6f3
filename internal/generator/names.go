package generator

var firstNames = []string{
	"Wei", "Ming", "Hui", "Xin", "Jun", "Li", "Chen", "Yan", "Jing", "Rui",
	"Sarah", "Emily", "David", "Michael", "Jessica", "James", "Linda", "Robert",
	"Mary", "John", "Tan", "Lim", "Wong", "Ng", "Lee", "Goh", "Ong", "Teo",
	"Rachel", "Kevin", "Grace", "Steven", "Nicole", "Benjamin", "Amanda", "Daniel",
	"Michelle", "Andrew", "Jennifer", "Marcus", "Rajesh", "Kumar", "Priya",
}

var lastNames = []string{
	"Tan", "Lim", "Wong", "Ng", "Lee", "Goh", "Ong", "Teo", "Koh", "Sim",
	"Chen", "Yeo", "Low", "Chua", "Tay", "Ho", "Yap", "Ang", "Chng", "Soh",
	"Kumar", "Singh", "Krishnan", "Nair", "Rahman", "Hassan", "Ali", "Chong",
}

var treatmentSummaries = []string{
	"Patient presented with flu-like symptoms. Prescribed rest and medication.",
	"Routine health checkup completed. All vitals normal.",
	"Patient complained of persistent cough. Prescribed antibiotics and cough syrup.",
	"Follow-up consultation for chronic condition. Medication adjusted.",
	"Minor injury treated and bandaged. Advised to return if condition worsens.",
	"Vaccination administered. Patient advised on possible side effects.",
	"Blood test results reviewed. All parameters within normal range.",
	"Patient presented with headache and fever. Prescribed pain relief medication.",
	"Skin condition examined. Topical cream prescribed.",
	"Consultation for back pain. Referred to physiotherapy.",
}

func randomName(src Source) string {
	return pick(src, firstNames) + " " + pick(src, lastNames)
}

// namePermutations lists every first/last combination once.
func namePermutations() []string {
	names := make([]string, 0, len(firstNames)*len(lastNames))
	for _, first := range firstNames {
		for _, last := range lastNames {
			names = append(names, first+" "+last)
		}
	}
	return names
}
