package ftracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ioann7/go-ftracker/internal/ftracker"
)

func TestTrainingInfoMessage(t *testing.T) {
	tests := []struct {
		name     string
		training ftracker.Training
		expected string
	}{
		{
			name:     "running",
			training: ftracker.NewRunning(15000, 1, 75),
			expected: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 722.250.",
		},
		{
			name:     "walking",
			training: ftracker.NewSportsWalking(9000, 1, 75, 180),
			expected: "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
		},
		{
			name:     "swimming",
			training: ftracker.NewSwimming(720, 1, 80, 25, 40),
			expected: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.training.TrainingInfo()
			assert.Equal(t, tt.expected, info.String(), "Сообщение о тренировке не совпадает с ожидаемым")
		})
	}
}

func TestInfoMessageDeterministic(t *testing.T) {
	info := ftracker.NewSwimming(720, 1, 80, 25, 40).TrainingInfo()
	assert.Equal(t, info.String(), info.String(), "Повторное форматирование должно давать тот же результат")
}

func TestInfoMessageRounding(t *testing.T) {
	info := ftracker.InfoMessage{
		TrainingType: "Running",
		Duration:     1.23456,
		Distance:     9.8765,
		Speed:        8.0004,
		Calories:     700.5555,
	}

	assert.Equal(t,
		"Тип тренировки: Running; Длительность: 1.235 ч.; Дистанция: 9.877 км; Ср. скорость: 8.000 км/ч; Потрачено ккал: 700.556.",
		info.String(),
	)
}
