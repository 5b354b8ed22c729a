package engine

import (
	"customer-insights-service/internal/insights/core/domain"
)

func customer(region, gender, signup, enrolled, plan string, satisfaction, interest float64) domain.Record {
	return domain.Record{
		Region:                 region,
		Gender:                 gender,
		PreferredDevice:        "Mobile",
		SignupStatus:           signup,
		CourseEnrolled:         enrolled,
		CourseInterested:       "Data Science",
		AdChannel:              "Instagram",
		PlanType:               plan,
		CourseCompletionStatus: domain.NotApplicable,
		EducationLevel:         domain.NotApplicable,
		SatisfactionScore:      satisfaction,
		InterestScore:          interest,
		ReferralCount:          1,
		MonthlyFee:             20,
	}
}

func sampleDataset() *domain.Dataset {
	return domain.NewDataset("test", []domain.Record{
		customer("North", "M", "Yes", "Yes", "Basic", 8, 70),
		customer("South", "F", "No", "No", "Pro", 4, 30),
		customer("North", "F", "Yes", "No", "Pro", 6, 50),
		customer("South", "M", "Yes", "Yes", "Basic", 10, 90),
	})
}
