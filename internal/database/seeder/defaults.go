package seeder

// Defaults seeds a demo recruiter, a few candidates with skill history and one
// job. Every seeder is idempotent.
func Defaults() []Seeder {
	return []Seeder{
		UsersSeeder{},
		SkillsSeeder{},
		JobsSeeder{},
	}
}
