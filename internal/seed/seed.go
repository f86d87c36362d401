package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 8

type seedSubject struct {
	name   string
	age    int
	gender string
}

var subjects = []seedSubject{
	{"Homero Simpson", 39, "M"},
	{"Marge Simpson", 36, "F"},
	{"Bart Simpson", 10, "M"},
	{"Lisa Simpson", 8, "F"},
	{"Bugs Bunny", 33, "M"},
	{"Lola Bunny", 30, "F"},
	{"Mickey Mouse", 35, "M"},
	{"Minnie Mouse", 34, "F"},
	{"Goku Son", 40, "M"},
	{"Bulma Brief", 38, "F"},
	{"Mario Bros", 42, "M"},
	{"Princesa Peach", 28, "F"},
	{"Pedro Picapiedra", 45, "M"},
	{"Vilma Picapiedra", 40, "F"},
	{"Scooby Doo", 7, "O"},
	{"Piolín Canario", 5, "O"},
	{"Don Gato", 12, "M"},
	{"Candy Candy", 16, "F"},
	{"Heidi Alpes", 9, "F"},
	{"Arnold Shortman", 11, "M"},
}

var tagNames = []string{
	"Cafe tarde",
	"Alcohol ocasional",
	"Fumador",
	"Ejercicio regular",
	"Pantallas en cama",
	"Siesta diurna",
}

// Run seeds the database with sample subjects, tags and sleep records.
// Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Subject{},
		&domain.Tag{},
		&domain.SleepRecord{},
		&domain.SleepStage{},
		&domain.LifestyleFactors{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	tags := make([]domain.Tag, len(tagNames))
	for i, name := range tagNames {
		tag := domain.Tag{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&tag).Error; err != nil {
			return fmt.Errorf("failed to create tag %q: %w", name, err)
		}
		tags[i] = tag
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, ss := range subjects {
		if err := seedSubjectWithRecords(db, ss, tags, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedSubjectWithRecords(db *gorm.DB, ss seedSubject, tags []domain.Tag, rng *rand.Rand) error {
	name := ss.name
	subject := domain.Subject{
		Name:   &name,
		Age:    ss.age,
		Gender: ss.gender,
	}
	if err := db.Where("name = ?", name).FirstOrCreate(&subject).Error; err != nil {
		return fmt.Errorf("failed to create subject %q: %w", name, err)
	}

	// Assign up to two random tags
	assigned := make([]domain.Tag, 0, 2)
	for _, idx := range rng.Perm(len(tags))[:rng.Intn(3)] {
		assigned = append(assigned, tags[idx])
	}
	if len(assigned) > 0 {
		if err := db.Model(&subject).Association("Tags").Replace(assigned); err != nil {
			return fmt.Errorf("failed to tag subject %q: %w", name, err)
		}
	}

	today := domain.Today()
	for i := 1; i <= seededDays; i++ {
		day := today.AddDate(0, 0, -i)
		recordDate := domain.NewDate(day.Year(), day.Month(), day.Day())

		bedtime := domain.TimeOfDay{Hour: 21 + rng.Intn(3), Minute: rng.Intn(60)}
		wakeupTime := domain.TimeOfDay{Hour: 5 + rng.Intn(4), Minute: rng.Intn(60)}
		awakenings := rng.Intn(5)

		duration, efficiency := domain.ComputeSleepMetrics(recordDate, bedtime, wakeupTime, awakenings)
		bed, wake := domain.ResolveSleepWindow(recordDate, bedtime, wakeupTime)

		record := domain.SleepRecord{
			SubjectID:       subject.ID,
			RecordDate:      recordDate.Time,
			Bedtime:         bed,
			WakeupTime:      wake,
			SleepDuration:   duration,
			SleepEfficiency: efficiency,
			Awakenings:      awakenings,
		}
		if err := db.Where("subject_id = ? AND record_date = ?", subject.ID, recordDate.Time).
			FirstOrCreate(&record).Error; err != nil {
			return fmt.Errorf("failed to create record for %q: %w", name, err)
		}

		if rng.Float32() < 0.6 {
			rem := 15.0 + float64(rng.Intn(10))
			deep := 12.0 + float64(rng.Intn(10))
			stage := domain.SleepStage{
				SleepRecordID:   record.ID,
				REMPercentage:   rem,
				DeepPercentage:  deep,
				LightPercentage: 100 - rem - deep,
			}
			if err := db.Where("sleep_record_id = ?", record.ID).FirstOrCreate(&stage).Error; err != nil {
				return fmt.Errorf("failed to create stage for %q: %w", name, err)
			}
		}

		if rng.Float32() < 0.5 {
			factors := domain.LifestyleFactors{
				SleepRecordID:       record.ID,
				CaffeineConsumption: []string{"ninguna", "1 taza", "2 tazas", "3+ tazas"}[rng.Intn(4)],
				AlcoholConsumption:  []string{"ninguno", "ocasional", "frecuente"}[rng.Intn(3)],
				SmokingStatus:       []string{"no fumador", "fumador", "ex fumador"}[rng.Intn(3)],
				ExerciseFrequency:   []string{"nunca", "1x semana", "3x semana", "diario"}[rng.Intn(4)],
			}
			if err := db.Where("sleep_record_id = ?", record.ID).FirstOrCreate(&factors).Error; err != nil {
				return fmt.Errorf("failed to create lifestyle for %q: %w", name, err)
			}
		}
	}

	return nil
}
