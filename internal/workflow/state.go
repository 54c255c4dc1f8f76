package workflow

// State is where a run currently is.
//
//	Idle → Extracting → Transcribing → [ContextLoading] → Evaluating → Persisting → Done
//
// Any unrecovered failure moves the run to Failed. Done and Failed are terminal.
type State string

const (
	StateIdle           State = "idle"
	StateExtracting     State = "extracting"
	StateTranscribing   State = "transcribing"
	StateContextLoading State = "context_loading"
	StateEvaluating     State = "evaluating"
	StatePersisting     State = "persisting"
	StateDone           State = "done"
	StateFailed         State = "failed"
)

func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// InFlight reports whether a stage is currently running.
func (s State) InFlight() bool {
	return s != StateIdle && !s.Terminal()
}

// Stages lists the working states in execution order.
var Stages = []State{StateExtracting, StateTranscribing, StateContextLoading, StateEvaluating, StatePersisting}

// Message is the progress text shown while a stage runs.
func (s State) Message() string {
	switch s {
	case StateExtracting:
		return "Extraindo áudio do vídeo..."
	case StateTranscribing:
		return "Transcrevendo com Whisper..."
	case StateContextLoading:
		return "Carregando barema de referência..."
	case StateEvaluating:
		return "Gerando análise..."
	case StatePersisting:
		return "Salvando resposta..."
	case StateDone:
		return "Avaliação concluída!"
	case StateFailed:
		return "Avaliação falhou."
	}
	return ""
}
