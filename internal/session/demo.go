package session

import "sarthi-backend/internal/models"

const (
	DemoPatientEmail = "rahul@demo.com"
	DemoDoctorEmail  = "vikram@demo.com"
)

// DemoPatient adalah profil pasien demo yang juga jadi template signup
func DemoPatient() models.UserProfile {
	return models.UserProfile{
		ID:             "p1",
		Email:          DemoPatientEmail,
		Name:           "Rahul Sharma",
		Age:            28,
		Gender:         "Male",
		MedicalHistory: "Asthma (Mild), Seasonal Allergies",
		MedicalEvents: []models.MedicalEvent{
			{ID: "1", Date: "2023-11-15", Title: "Annual Physical Checkup", Description: "Blood pressure 120/80. Weight 72kg. All vitals normal. Patient advised to maintain regular exercise regime.", Type: models.EventGeneral, DoctorName: "Dr. Rajesh Kumar", Location: "City General Hospital"},
			{ID: "2", Date: "2023-08-10", Title: "Eye Examination", Description: "Routine vision test. Mild myopia diagnosed in left eye (-0.5D). Anti-glare glasses prescribed.", Type: models.EventGeneral, DoctorName: "Dr. Aditi Gupta", Location: "Vision Care Center"},
			{ID: "3", Date: "2023-05-22", Title: "Viral Fever Treatment", Description: "Patient presented with high fever (102F) and body ache. Tested negative for Dengue/Malaria. Prescribed Paracetamol and rest.", Type: models.EventDiagnosis, DoctorName: "Dr. Rajesh Kumar", Location: "City General Hospital"},
			{ID: "4", Date: "2022-12-05", Title: "Appendectomy", Description: "Emergency laparoscopic appendectomy performed. Surgery successful. No post-operative complications.", Type: models.EventSurgery, DoctorName: "Dr. Suresh Menon", Location: "Apollo Hospital"},
			{ID: "5", Date: "2022-03-15", Title: "Dermatology Consult", Description: "Allergic reaction to dust mites causing skin rash on forearm. Prescribed antihistamines and topical corticosteroid cream.", Type: models.EventDiagnosis, DoctorName: "Dr. Meera Reddy", Location: "Skin & Glow Clinic"},
		},
		Reports: []models.MedicalReport{
			{ID: "r1", Title: "Complete Blood Count (CBC)", Date: "2023-11-15", Type: models.ReportLab, DoctorName: "City PathLabs", URL: "#"},
			{ID: "r5", Title: "Medical Fitness Certificate", Date: "2023-11-16", Type: models.ReportCertificate, DoctorName: "Dr. Rajesh Kumar", URL: "#"},
			{ID: "r2", Title: "Eye Vision Prescription", Date: "2023-08-10", Type: models.ReportPrescription, DoctorName: "Dr. Aditi Gupta", URL: "#"},
			{ID: "r3", Title: "Discharge Summary - Surgery", Date: "2022-12-08", Type: models.ReportCertificate, DoctorName: "Apollo Hospital", URL: "#"},
			{ID: "r7", Title: "Sick Leave Certificate (3 Days)", Date: "2023-05-22", Type: models.ReportCertificate, DoctorName: "Dr. Rajesh Kumar", URL: "#"},
			{ID: "r4", Title: "Allergy Test Panel", Date: "2022-03-15", Type: models.ReportLab, DoctorName: "Dr. Meera Reddy", URL: "#"},
			{ID: "r6", Title: "Chest X-Ray PA View", Date: "2020-09-12", Type: models.ReportImaging, DoctorName: "City Imaging Center", URL: "#"},
		},
		Allergies: []string{"Penicillin", "Dust Mites"},
		Medications: []models.Medication{
			{ID: "m1", Name: "Albuterol Inhaler", Dosage: "2 puffs", Frequency: "As needed", Taken: false},
			{ID: "m2", Name: "Multivitamins", Dosage: "1 Tablet", Frequency: "Morning", Taken: true},
			{ID: "m3", Name: "Cetirizine", Dosage: "10mg", Frequency: "Night", Taken: false},
		},
		EmergencyContact: models.EmergencyContact{
			Name:     "Priya Sharma",
			Phone:    "+91 98765 43210",
			Relation: "Spouse",
		},
	}
}

// DemoDoctor adalah akun dokter demo (Dr. Vikram Singh)
func DemoDoctor() models.Doctor {
	return models.Doctor{
		ID:             "4",
		Name:           "Dr. Vikram Singh",
		Specialty:      "Neurologist",
		Rating:         4.9,
		Image:          "https://picsum.photos/100/100?random=4",
		NextAvailable:  "Wed, 11:00 AM",
		Price:          "₹1500",
		IsVideoEnabled: true,
		About:          "Expert in treating migraines, epilepsy, and stroke rehabilitation.",
		Experience:     12,
		Qualifications: []string{"MBBS", "MD", "DM (Neurology)"},
		Verified:       true,
	}
}
