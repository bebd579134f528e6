package app

import (
	"github.com/shopspring/decimal"

	"schoolbook/internal/domain"
)

type seedSubject struct {
	name string
	coef float64
}

type seedClass struct {
	name     string
	fee      int64
	subjects []seedSubject
}

type seedStudent struct {
	enrollment domain.Enrollment
	className  string
	grades     map[string][]float64
	paid       int64
}

var seedClasses = []seedClass{
	{name: "Seconde", fee: 5000, subjects: []seedSubject{{"Math", 2}, {"French", 1}}},
	{name: "Troisième", fee: 4000, subjects: []seedSubject{{"Math", 3}, {"History", 1}, {"English", 2}}},
}

var seedStudents = []seedStudent{
	{
		enrollment: domain.Enrollment{LastName: "Joseph", FirstName: "Marie", Address: "12 Rue Capois, Port-au-Prince", Sex: domain.SexFemale},
		className:  "Seconde",
		grades:     map[string][]float64{"Math": {80, 90}, "French": {60}},
		paid:       3000,
	},
	{
		enrollment: domain.Enrollment{LastName: "Pierre", FirstName: "Jean", Address: "4 Avenue Christophe, Cap-Haïtien", Sex: domain.SexMale},
		className:  "Seconde",
		grades:     map[string][]float64{"Math": {55}},
	},
	{
		enrollment: domain.Enrollment{LastName: "Charles", FirstName: "Nadège", Address: "Route de Kenscoff, Pétion-Ville", Sex: domain.SexFemale},
		className:  "Troisième",
		grades:     map[string][]float64{"History": {72, 68}, "English": {91}},
		paid:       4000,
	},
}

// Seed fills an empty registry with a small sample school: two classes, three
// students with grades, and their tuition payments.
func Seed(reg *Registry) error {
	classIDs := make(map[string]domain.ClassID, len(seedClasses))
	for _, sc := range seedClasses {
		class, err := reg.Curriculum.CreateClass(sc.name, decimal.NewFromInt(sc.fee))
		if err != nil {
			return err
		}
		for _, subj := range sc.subjects {
			if _, err := reg.Curriculum.AddSubject(class.ID, subj.name, subj.coef); err != nil {
				return err
			}
		}
		classIDs[sc.name] = class.ID
	}

	for _, ss := range seedStudents {
		req := ss.enrollment
		req.ClassID = classIDs[ss.className]
		st, err := reg.Enrollment.Enroll(req)
		if err != nil {
			return err
		}
		class, err := reg.Curriculum.Class(st.ClassID)
		if err != nil {
			return err
		}
		// Curriculum order keeps the seeded data deterministic.
		for _, subj := range class.Subjects {
			grades, ok := ss.grades[subj.Name]
			if !ok {
				continue
			}
			if _, err := reg.Grading.RecordGrades(st.ID, subj.Name, grades); err != nil {
				return err
			}
		}
		if ss.paid > 0 {
			if _, err := reg.Ledger.RecordPayment(st.ID, decimal.NewFromInt(ss.paid)); err != nil {
				return err
			}
		}
	}
	return nil
}
