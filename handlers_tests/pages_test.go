package handlers

import (
	"testing"
)

func TestPages(t *testing.T) {
	tests := []Test{
		{
			description:  "home",
			route:        "/",
			expectedCode: 200,
			expectedBody: []string{"<title>Бронирование столиков в ресторанах</title>", `action="/restaurants/"`},
		},
		{
			description:  "restaurants without parameters",
			route:        "/restaurants/",
			expectedCode: 400,
			expectedBody: []string{"Произошла ошибка", "missing required datetime or people number"},
		},
		{
			description:  "restaurants with an empty date",
			route:        "/restaurants/?people_number=4&desired_datetime=",
			expectedCode: 400,
			expectedBody: []string{"missing required datetime or people number"},
		},
		{
			description:  "restaurants link to the dialog with the same query",
			route:        "/restaurants/?people_number=4&desired_datetime=2023-03-05T20:00",
			expectedCode: 200,
			expectedBody: []string{
				"Выбор ресторана",
				`href="/restaurants/42/confirmation?people_number=4&amp;desired_datetime=2023-03-05T20:00">Luna</a>`,
				`href="/restaurants/7/confirmation?people_number=4&amp;desired_datetime=2023-03-05T20:00">Sakura</a>`,
			},
		},
	}

	runTests(t, newApp(t), tests)
}

func TestRestaurantsAPI(t *testing.T) {
	tests := []Test{
		{
			description:  "list keeps catalog order",
			route:        "/api/v1/restaurants",
			expectedCode: 200,
			expectedBody: []string{`"data":[{"id":"42","name":"Luna"},{"id":"7","name":"Sakura"}]`},
		},
		{
			description:  "get by id",
			route:        "/api/v1/restaurants/7",
			expectedCode: 200,
			expectedBody: []string{`"data":{"id":"7","name":"Sakura"}`},
		},
		{
			description:  "unknown id",
			route:        "/api/v1/restaurants/404",
			expectedCode: 404,
			expectedBody: []string{`"message":"resource not found"`},
		},
	}

	runTests(t, newApp(t), tests)
}

func TestProfiler(t *testing.T) {
	runTests(t, newApp(t), []Test{
		{
			description:  "pprof index",
			route:        "/debug/pprof/",
			expectedCode: 200,
			expectedBody: []string{"goroutine"},
		},
	})
}
