package appointment

// ===============================
// Appointment Status
// ===============================

type StatusName string

const (
	StatusPending    StatusName = "PENDING"
	StatusConfirmed  StatusName = "CONFIRMED"
	StatusInProgress StatusName = "IN_PROGRESS"
	StatusCompleted  StatusName = "COMPLETED"
	StatusCancelled  StatusName = "CANCELLED"
	StatusNoShow     StatusName = "NO_SHOW"
)

// Tabela de transições permitidas. Estado fora da tabela não transiciona
// para lugar nenhum (terminais inclusos).
var transitions = map[StatusName][]StatusName{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

var terminal = map[StatusName]bool{
	StatusCompleted: true,
	StatusCancelled: true,
	StatusNoShow:    true,
}

var descriptions = map[StatusName]string{
	StatusPending:    "Aguardando confirmação",
	StatusConfirmed:  "Confirmado",
	StatusInProgress: "Em atendimento",
	StatusCompleted:  "Concluído",
	StatusCancelled:  "Cancelado",
	StatusNoShow:     "Cliente não compareceu",
}

// CanTransitionTo consulta a tabela; false para qualquer par não listado.
func CanTransitionTo(from, to StatusName) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsTerminal(s StatusName) bool {
	return terminal[s]
}

func InitialStatus() StatusName {
	return StatusPending
}

func AllStatusNames() []StatusName {
	return []StatusName{
		StatusPending,
		StatusConfirmed,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
		StatusNoShow,
	}
}

func StatusDescription(s StatusName) string {
	return descriptions[s]
}
