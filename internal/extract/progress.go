package extract

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Stage names the pipeline step a progress event belongs to.
type Stage string

const (
	StageIndex   Stage = "index"
	StageLinks   Stage = "links"
	StageDetails Stage = "details"
	StageDone    Stage = "done"
)

// ProgressEvent represents an extraction progress update.
type ProgressEvent struct {
	Stage   Stage
	Message string
	Level   ProgressLevel
}
