package appointment

import "sarthi-backend/internal/models"

// DemoAppointments: upcoming, request pending untuk dashboard dokter, dan riwayat
func DemoAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: "201", DoctorID: "1", DoctorName: "Dr. Anita Desai", Date: "Today", Time: "2:30 PM", Type: models.ConsultVideo, Status: models.StatusUpcoming, Notes: "Routine check"},
		{ID: "204", DoctorID: "4", DoctorName: "Dr. Vikram Singh", Date: "Tomorrow", Time: "11:00 AM", Type: models.ConsultVideo, Status: models.StatusUpcoming, Notes: "Follow up on migraine"},

		{ID: "207", DoctorID: "4", DoctorName: "Dr. Vikram Singh", Date: "Today", Time: "04:00 PM", Type: models.ConsultVideo, Status: models.StatusPending, Notes: "New Patient: Frequent headaches"},
		{ID: "208", DoctorID: "4", DoctorName: "Dr. Vikram Singh", Date: "Tomorrow", Time: "12:30 PM", Type: models.ConsultInPerson, Status: models.StatusPending, Notes: "Review MRI Scan"},

		{ID: "202", DoctorID: "2", DoctorName: "Dr. Rajesh Kumar", Date: "2023-11-15", Time: "10:00 AM", Type: models.ConsultInPerson, Status: models.StatusCompleted, Notes: "Annual Physical", Diagnosis: "Healthy", Prescription: []string{"Multivitamins"}, UserRating: 5},
		{ID: "205", DoctorID: "6", DoctorName: "Dr. Aditi Gupta", Date: "2023-08-10", Time: "11:30 AM", Type: models.ConsultInPerson, Status: models.StatusCompleted, Notes: "Eye Exam", Diagnosis: "Mild Myopia", Prescription: []string{"Eye Drops", "Corrective Lenses"}},
		{ID: "203", DoctorID: "3", DoctorName: "Dr. Meera Reddy", Date: "2023-03-15", Time: "4:00 PM", Type: models.ConsultVideo, Status: models.StatusCompleted, Notes: "Skin rash", Diagnosis: "Contact Dermatitis", Prescription: []string{"Hydrocortisone Cream", "Levocetirizine"}, UserRating: 4, UserReview: "Good doctor, but video lagged a bit."},
		{ID: "206", DoctorID: "2", DoctorName: "Dr. Rajesh Kumar", Date: "2023-05-22", Time: "09:30 AM", Type: models.ConsultInPerson, Status: models.StatusCompleted, Notes: "High Fever", Diagnosis: "Viral Fever", Prescription: []string{"Paracetamol 650mg", "Rest"}},
		{ID: "209", DoctorID: "5", DoctorName: "Dr. Arjun Gupta", Date: "2022-11-20", Time: "05:00 PM", Type: models.ConsultInPerson, Status: models.StatusCompleted, Notes: "Ankle Sprain", Diagnosis: "Grade 1 Ligament Tear", Prescription: []string{"Volini Spray", "Aceclofenac"}, UserRating: 5},
	}
}
