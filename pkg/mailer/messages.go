package mailer

import "fmt"

// ParcelSentMessage notifies sender and recipient that a parcel was registered
func ParcelSentMessage(senderEmail, recipientEmail, sender, receiver, trackingNumber, statusLevel, trackingLink string) *Message {
	return &Message{
		To:      []string{senderEmail, recipientEmail},
		Subject: "Parcel Successfully Sent",
		HTML: fmt.Sprintf(`
			<p>This is to inform you that parcel sent by <strong>%s</strong> to <strong>%s</strong> has been successfully processed and is currently in progress.</p>
			<p>You will be notified of any further updates regarding its status.</p>
			<h3>Tracking Number: %s</h3>
			<h4>Status Level: %s</h4>
			<p><strong>Thank you for your cooperation.</strong></p>
			<p>To verify, click <a href="%s">Here</a>.</p>
		`, sender, receiver, trackingNumber, statusLevel, trackingLink),
	}
}

// StatusUpdateMessage notifies sender and recipient of a status change
func StatusUpdateMessage(senderEmail, recipientEmail, sender, receiver, trackingNumber, newStatus, trackingLink string) *Message {
	return &Message{
		To:      []string{senderEmail, recipientEmail},
		Subject: "Parcel Status Update",
		HTML: fmt.Sprintf(`
			<p>This is to inform you that parcel sent by <strong>%s</strong> to <strong>%s</strong> has a new status update.</p>
			<h3>Tracking Number: %s</h3>
			<h3>Status Level: %s</h3>
			<p><strong>Thank you for your cooperation.</strong></p>
			<p>To verify, click <a href="%s">Here</a>.</p>
		`, sender, receiver, trackingNumber, newStatus, trackingLink),
	}
}

// WelcomeWorkerMessage welcomes a newly registered staff member
func WelcomeWorkerMessage(email string) *Message {
	return &Message{
		To:      []string{email},
		Subject: "Welcome New Worker",
		HTML:    `<p>Welcome to the team! This is to inform you that you have been employed as a staff of ABC Logistics Company. We're excited to have you join us and look forward to the skills, ideas, and energy you'll bring. If you need any support as you settle in, feel free to reach out. We wish you a great start and every success with us.</p>`,
	}
}

// WelcomeAdminMessage welcomes a newly registered management member
func WelcomeAdminMessage(email string) *Message {
	return &Message{
		To:      []string{email},
		Subject: "Welcome New Worker",
		HTML:    `<p>Welcome to the team! This is to inform you that you have been employed into the management of ABC Logistics Company. We're excited to have you join us and look forward to the skills, ideas, and energy you'll bring. If you need any support as you settle in, feel free to reach out. We wish you a great start and every success with us.</p>`,
	}
}
