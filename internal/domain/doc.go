// Package domain содержит доменные типы Mayhem.
//
// # Обзор
//
// Сценарий — это YAML-файл с упорядоченным списком элементов:
//
//	# scenario.yaml
//	- id: wait
//	  config:
//	    duration_sec: 5
//	- id: http-probe
//	  config:
//	    url: https://example.com/healthz
//	    expected_status: 200
//
// После валидации формы каждый элемент превращается в Invocation
// (id + config + позиция). Выполнение одного Invocation даёт Outcome —
// идентификатор заполненного выходного слота плюс его данные,
// с уже вычисленной классификацией success/failure.
//
// RunContext несёт ambient-входы run'а: run id для корреляции
// и пути, инжектируемые в шаги по их декларации (см. schema.ContextKind).
//
// Все типы — значения без поведения; времени жизни за пределами
// одного run'а у них нет.
package domain
