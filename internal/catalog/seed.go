package catalog

import "sarthi-backend/internal/models"

func DemoDoctors() []models.Doctor {
	return []models.Doctor{
		{
			ID: "1", Name: "Dr. Anita Desai", Specialty: "Cardiologist", Rating: 4.9, Image: "https://picsum.photos/100/100?random=1",
			NextAvailable: "Today, 2:30 PM", Price: "₹1200", IsVideoEnabled: true,
			About:      "Dr. Anita Desai is a senior Cardiologist with over 15 years of experience. She specializes in preventive cardiology and heart failure management.",
			Experience: 15, Qualifications: []string{"MBBS", "MD (Medicine)", "DM (Cardiology)"}, Verified: true,
		},
		{
			ID: "2", Name: "Dr. Rajesh Kumar", Specialty: models.GeneralPhysician, Rating: 4.7, Image: "https://picsum.photos/100/100?random=2",
			NextAvailable: "Tomorrow, 9:00 AM", Price: "₹600", IsVideoEnabled: false,
			About:      "Friendly neighborhood physician focusing on holistic health and chronic disease management.",
			Experience: 8, Qualifications: []string{"MBBS", "DNB (Family Medicine)"},
		},
		{
			ID: "3", Name: "Dr. Meera Reddy", Specialty: "Dermatologist", Rating: 4.8, Image: "https://picsum.photos/100/100?random=3",
			NextAvailable: "Today, 4:15 PM", Price: "₹900", IsVideoEnabled: true,
			Experience: 10, Qualifications: []string{"MBBS", "MD (Dermatology)"},
		},
		{
			ID: "4", Name: "Dr. Vikram Singh", Specialty: "Neurologist", Rating: 4.9, Image: "https://picsum.photos/100/100?random=4",
			NextAvailable: "Wed, 11:00 AM", Price: "₹1500", IsVideoEnabled: true,
			About:      "Expert in treating migraines, epilepsy, and stroke rehabilitation. Passionate about leveraging technology for patient care.",
			Experience: 12, Qualifications: []string{"MBBS", "MD", "DM (Neurology)"}, Verified: true,
		},
		{
			ID: "5", Name: "Dr. Arjun Gupta", Specialty: "Orthopedist", Rating: 4.6, Image: "https://picsum.photos/100/100?random=5",
			NextAvailable: "Thu, 10:30 AM", Price: "₹1000", IsVideoEnabled: true,
			Experience: 14, Qualifications: []string{"MBBS", "MS (Orthopedics)"},
		},
	}
}
