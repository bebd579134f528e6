package shell

import (
	"schoolbook/internal/domain"
	"schoolbook/internal/tally"
)

func (s *Shell) configureClass() error {
	for {
		s.println("\n=== CONFIGURE A NEW CLASS ===")
		name, err := s.requireField("Class name")
		if err != nil {
			return err
		}

		classes, err := s.reg.Curriculum.Classes()
		if err != nil {
			return err
		}
		exists := false
		for _, c := range classes {
			exists = exists || domain.SameName(c.Name, name)
		}
		if exists {
			s.println("A class with this name already exists.")
		} else {
			fee, err := s.readAmount("Annual fee (" + s.reg.Currency + ")")
			if err != nil {
				return err
			}
			class, err := s.reg.Curriculum.CreateClass(name, fee)
			if err != nil {
				if err := s.report(err); err != nil {
					return err
				}
			} else {
				s.printf("Class '%s' configured with a fee of %s\n", class.Name, s.money(class.Fee))
			}
		}

		more, err := s.again("configure a class")
		if err != nil || !more {
			return err
		}
	}
}

func (s *Shell) configureSubjects() error {
	classes, err := s.reg.Curriculum.Classes()
	if err != nil {
		return err
	}
	if len(classes) == 0 {
		s.println("\nNo class configured. Please configure a class first.")
		return nil
	}

	for {
		s.println("\n=== CONFIGURE SUBJECTS ===")
		class, ok, err := s.chooseClass(true)
		if err != nil {
			return err
		}
		for ok {
			s.println("\n--- NEW SUBJECT ---")
			name, err := s.requireField("Subject name")
			if err != nil {
				return err
			}
			if _, dup := class.Subject(name); dup {
				s.println("This subject already exists in the class.")
			} else {
				coef, err := s.readPositiveFloat("Coefficient")
				if err != nil {
					return err
				}
				subject, err := s.reg.Curriculum.AddSubject(class.ID, name, coef)
				if err != nil {
					if err := s.report(err); err != nil {
						return err
					}
				} else {
					class.Subjects = append(class.Subjects, subject)
					s.printf("Subject '%s' added with coefficient %s\n", subject.Name, grade(subject.Coefficient))
				}
			}
			if ok, err = s.confirm("Add another subject?"); err != nil {
				return err
			}
		}

		more, err := s.again("configure subjects")
		if err != nil || !more {
			return err
		}
	}
}

func (s *Shell) enrollStudent() error {
	classes, err := s.reg.Curriculum.Classes()
	if err != nil {
		return err
	}
	if len(classes) == 0 {
		s.println("\nNo class configured. Please configure a class first.")
		return nil
	}

	for {
		s.println("\n=== ENROLL A NEW STUDENT ===")
		var req domain.Enrollment
		if req.LastName, err = s.requireField("Last name"); err != nil {
			return err
		}
		if req.FirstName, err = s.requireField("First name"); err != nil {
			return err
		}
		if req.Address, err = s.requireField("Full address"); err != nil {
			return err
		}
		for !req.Sex.Valid() {
			v, err := s.readLine("Sex (M/F)")
			if err != nil {
				return err
			}
			if sex, ok := domain.ParseSex(v); ok {
				req.Sex = sex
			} else {
				s.println("Invalid sex. Enter M for male or F for female.")
			}
		}

		class, ok, err := s.chooseClass(true)
		if err != nil {
			return err
		}
		if ok {
			req.ClassID = class.ID
			st, err := s.reg.Enrollment.Enroll(req)
			if err != nil {
				if err := s.report(err); err != nil {
					return err
				}
			} else {
				s.println("\nSTUDENT ENROLLED")
				s.printf("ID: %s | Name: %s | Sex: %s | Class: %s\n", st.ID, st.FullName(), st.Sex, class.Name)
			}
		}

		more, err := s.again("enroll a student")
		if err != nil || !more {
			return err
		}
	}
}

func (s *Shell) listStudents() error {
	list, err := s.reg.Enrollment.ListStudents()
	if err != nil {
		return err
	}
	s.printf("\nSTUDENT LIST (%d)\n", len(list))
	if len(list) == 0 {
		s.println("No student enrolled.")
		return nil
	}
	for _, sum := range list {
		s.printf("ID: %s | %s | %s | Average: %s | Fees paid: %s\n",
			sum.Student.ID, sum.Student.FullName(), sum.ClassName,
			averageOrNone(sum), yesNo(sum.Account.InGoodStanding()))
	}
	return nil
}

func (s *Shell) listStudentsByClass() error {
	classes, err := s.reg.Curriculum.Classes()
	if err != nil {
		return err
	}
	if len(classes) == 0 {
		s.println("\nNo class configured.")
		return nil
	}

	for {
		s.println("\n=== LIST STUDENTS BY CLASS ===")
		class, ok, err := s.chooseClass(false)
		if err != nil {
			return err
		}
		if ok {
			list, err := s.reg.Enrollment.ListStudentsByClass(class.ID)
			if err != nil {
				if err := s.report(err); err != nil {
					return err
				}
			}
			s.printf("\n=== STUDENTS OF %s (%d) ===\n", class.Name, len(list))
			if len(list) == 0 {
				s.println("No student in this class.")
			}
			for _, sum := range list {
				s.printf("ID: %s\nName: %s\nSex: %s\nAverage: %s\n---\n",
					sum.Student.ID, sum.Student.FullName(), sum.Student.Sex.Label(), averageOrNone(sum))
			}
		}

		more, err := s.again("list students")
		if err != nil || !more {
			return err
		}
	}
}

func (s *Shell) enterGrades() error {
	students, err := s.reg.Enrollment.ListStudents()
	if err != nil {
		return err
	}
	if len(students) == 0 {
		s.println("\nNo student enrolled.")
		return nil
	}

	for {
		s.println("\n=== ENTER GRADES ===")
		if err := s.enterGradesOnce(); err != nil {
			return err
		}
		more, err := s.again("enter grades")
		if err != nil || !more {
			return err
		}
	}
}

func (s *Shell) enterGradesOnce() error {
	id, err := s.readPositiveInt("Student ID")
	if err != nil {
		return err
	}
	st, err := s.reg.Enrollment.FindStudent(domain.StudentID(id))
	if err != nil {
		return s.report(err)
	}
	class, err := s.reg.Curriculum.Class(st.ClassID)
	if err != nil {
		return s.report(err)
	}
	if len(class.Subjects) == 0 {
		s.printf("No subject defined for class %s\n", class.Name)
		return nil
	}

	s.printf("Student: %s - Class: %s\n", st.FullName(), class.Name)
	for _, subject := range class.Subjects {
		s.printf("\n--- Subject: %s ---\n", subject.Name)
		var batch, kept []float64
		for more := true; more; {
			g, err := s.readFloat("Grade (0-100)")
			if err != nil {
				return err
			}
			batch = append(batch, g)
			if tally.ValidGrade(g) {
				kept = append(kept, g)
				s.printf("Grade %s added. Current grades: [%s]\n", grade(g), grades(kept))
			} else {
				s.println("Invalid grade. It must be between 0 and 100.")
			}
			if more, err = s.confirm("\nAdd another grade for this subject?"); err != nil {
				return err
			}
		}
		entry, err := s.reg.Grading.RecordGrades(st.ID, subject.Name, batch)
		if err != nil {
			if err := s.report(err); err != nil {
				return err
			}
			continue
		}
		if len(entry.Accepted) == 0 {
			s.printf("No valid grade for %s, previous grades kept.\n", subject.Name)
		}
	}
	s.printf("\nAll grades entered for %s\n", st.FullName())
	return nil
}

func (s *Shell) showSubjectGrades() error {
	classes, err := s.reg.Curriculum.Classes()
	if err != nil {
		return err
	}
	if len(classes) == 0 {
		s.println("\nNo class configured.")
		return nil
	}

	for {
		s.println("\n=== GRADES FOR A SUBJECT ===")
		if err := s.showSubjectGradesOnce(); err != nil {
			return err
		}
		more, err := s.again("show grades")
		if err != nil || !more {
			return err
		}
	}
}

func (s *Shell) showSubjectGradesOnce() error {
	class, ok, err := s.chooseClass(true)
	if err != nil || !ok {
		return err
	}
	if len(class.Subjects) == 0 {
		s.println("No subject defined for this class.")
		return nil
	}

	s.println("\n=== AVAILABLE SUBJECTS ===")
	for i, subj := range class.Subjects {
		s.printf("%d. %s\n", i+1, subj.Name)
	}
	i, ok, err := s.choose("Choose a subject (number)", len(class.Subjects))
	if err != nil || !ok {
		return err
	}

	return s.printSubjectReport(class.ID, class.Subjects[i].Name)
}

func (s *Shell) printSubjectReport(classID domain.ClassID, subject string) error {
	report, err := s.reg.Grading.SubjectReport(classID, subject)
	if err != nil {
		return s.report(err)
	}
	s.printf("\n=== GRADES FOR %s (%s) ===\n", report.Subject.Name, report.Class.Name)
	for _, row := range report.Rows {
		if !row.Graded {
			s.printf("%s: No grades\n", row.Student.FullName())
			continue
		}
		s.printf("%s - %s : %s (average %s)\n",
			row.Student.FullName(), report.Subject.Name, grades(row.Grades), average(row.Average))
	}
	if !report.HasClassAverage {
		s.println("No grades recorded for this subject.")
		return nil
	}
	s.println("\n=== STATISTICS ===")
	s.printf("Class average: %s\n", average(report.ClassAverage))
	s.printf("Students with grades: %d/%d\n", report.GradedCount, report.Total)
	return nil
}

func averageOrNone(sum domain.StudentSummary) string {
	if !sum.HasAverage {
		return "No grades"
	}
	return average(sum.Average)
}
