package constvars

const (
	EmailSubjectReservationNotice       = "Your therapist reservation"
	EmailSubjectAppointmentNotification = "New appointment request"

	EmailTypeReservationNotice       = "reservation_notice"
	EmailTypeAppointmentNotification = "appointment_notification"
)
