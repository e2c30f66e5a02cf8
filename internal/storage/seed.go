package storage

import (
	. "directory/internal/models"
)

// DefaultEmployees is the collection written on first run so the directory
// is not empty. Ids are pre-assigned in insertion order; new records continue
// from the maximum.
func DefaultEmployees() []Employee {
	return []Employee{
		{
			ID:             "1",
			FirstName:      "Ahmet",
			LastName:       "Sourtimes",
			EmploymentDate: "2022-09-23",
			BirthDate:      "1990-01-01",
			Phone:          "+905321234567",
			Email:          "ahmet.sourtimes@example.com",
			Department:     DepartmentAnalytics,
			Position:       PositionJunior,
		},
		{
			ID:             "2",
			FirstName:      "Elif",
			LastName:       "Kaya",
			EmploymentDate: "2021-03-15",
			BirthDate:      "1988-06-12",
			Phone:          "+905339876543",
			Email:          "elif.kaya@example.com",
			Department:     DepartmentTech,
			Position:       PositionSenior,
		},
		{
			ID:             "3",
			FirstName:      "Mehmet",
			LastName:       "Demir",
			EmploymentDate: "2023-01-09",
			BirthDate:      "1995-11-30",
			Phone:          "+905051112233",
			Email:          "mehmet.demir@example.com",
			Department:     DepartmentTech,
			Position:       PositionMedior,
		},
		{
			ID:             "4",
			FirstName:      "Zeynep",
			LastName:       "Arslan",
			EmploymentDate: "2020-07-01",
			BirthDate:      "1992-04-18",
			Phone:          "+905442223344",
			Email:          "zeynep.arslan@example.com",
			Department:     DepartmentAnalytics,
			Position:       PositionSenior,
		},
		{
			ID:             "5",
			FirstName:      "Can",
			LastName:       "Yilmaz",
			EmploymentDate: "2023-05-22",
			BirthDate:      "1997-02-07",
			Phone:          "+905553334455",
			Email:          "can.yilmaz@example.com",
			Department:     DepartmentTech,
			Position:       PositionJunior,
		},
		{
			ID:             "6",
			FirstName:      "Ayse",
			LastName:       "Celik",
			EmploymentDate: "2019-10-14",
			BirthDate:      "1985-08-25",
			Phone:          "+905364445566",
			Email:          "ayse.celik@example.com",
			Department:     DepartmentAnalytics,
			Position:       PositionMedior,
		},
		{
			ID:             "7",
			FirstName:      "Emre",
			LastName:       "Sahin",
			EmploymentDate: "2022-02-28",
			BirthDate:      "1993-12-03",
			Phone:          "+905375556677",
			Email:          "emre.sahin@example.com",
			Department:     DepartmentTech,
			Position:       PositionMedior,
		},
		{
			ID:             "8",
			FirstName:      "Selin",
			LastName:       "Koc",
			EmploymentDate: "2024-04-01",
			BirthDate:      "1999-05-16",
			Phone:          "+905386667788",
			Email:          "selin.koc@example.com",
			Department:     DepartmentAnalytics,
			Position:       PositionJunior,
		},
		{
			ID:             "9",
			FirstName:      "Burak",
			LastName:       "Aydin",
			EmploymentDate: "2021-08-19",
			BirthDate:      "1991-09-09",
			Phone:          "+905397778899",
			Email:          "burak.aydin@example.com",
			Department:     DepartmentTech,
			Position:       PositionSenior,
		},
		{
			ID:             "10",
			FirstName:      "Deniz",
			LastName:       "Ozturk",
			EmploymentDate: "2023-11-06",
			BirthDate:      "1996-07-21",
			Phone:          "+905418889900",
			Email:          "deniz.ozturk@example.com",
			Department:     DepartmentAnalytics,
			Position:       PositionMedior,
		},
		{
			ID:             "11",
			FirstName:      "Kerem",
			LastName:       "Polat",
			EmploymentDate: "2020-12-07",
			BirthDate:      "1989-03-28",
			Phone:          "+905429990011",
			Email:          "kerem.polat@example.com",
			Department:     DepartmentTech,
			Position:       PositionJunior,
		},
		{
			ID:             "12",
			FirstName:      "Melis",
			LastName:       "Erdogan",
			EmploymentDate: "2022-06-13",
			BirthDate:      "1994-10-11",
			Phone:          "+905430001122",
			Email:          "melis.erdogan@example.com",
			Department:     DepartmentAnalytics,
			Position:       PositionSenior,
		},
	}
}
