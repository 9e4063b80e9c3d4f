package email

const (
	subjectBookingConfirmationFmt = "Agendamento confirmado: %s"
	subjectCancellationFmt        = "Agendamento cancelado: %s"
	subjectReminderFmt            = "Lembrete: seu atendimento de %s"
)
