package onboarding

// TaskDefinition is one entry of the deploy-time task catalogue.
type TaskDefinition struct {
	Stage Stage
	Order int
	Title string
}

// DefaultTaskCatalogue is the fixed task set per stage. Seeded once at
// deploy; not user-authorable at runtime.
var DefaultTaskCatalogue = []TaskDefinition{
	{StagePrepare, 1, "Sign and return employment contract"},
	{StagePrepare, 2, "Complete personal information form"},
	{StagePrepare, 3, "Submit required documents"},
	{StagePrepare, 4, "Review company handbook"},

	{StageOrient, 1, "Attend welcome session"},
	{StageOrient, 2, "Complete IT and security setup"},
	{StageOrient, 3, "Meet the team"},
	{StageOrient, 4, "Review role expectations with supervisor"},

	{StageLand, 1, "Complete mandatory compliance training"},
	{StageLand, 2, "Shadow a senior colleague"},
	{StageLand, 3, "Set 30-day objectives"},

	{StageIntegrate, 1, "Deliver first independent assignment"},
	{StageIntegrate, 2, "Join a cross-team initiative"},
	{StageIntegrate, 3, "Mid-point check-in with supervisor"},

	{StageExcel, 1, "Set long-term development goals"},
	{StageExcel, 2, "Complete onboarding retrospective"},
}

// CountDefaultCatalogueTasks returns the catalogue size; the denominator of
// the overall progress percentage on a freshly seeded deployment.
func CountDefaultCatalogueTasks() int {
	return len(DefaultTaskCatalogue)
}

// CatalogueForStage filters the static catalogue. Unknown stages yield an
// empty slice, not an error, to keep UI rendering simple.
func CatalogueForStage(stage Stage) []TaskDefinition {
	var out []TaskDefinition
	for _, def := range DefaultTaskCatalogue {
		if def.Stage == stage {
			out = append(out, def)
		}
	}
	return out
}
