package planner

import (
	"math/rand"
	"time"
)

// PickOne is the legacy single-task picker over the seeded library: category
// exact, level within +-1, minutes within +-5 of the preference. Returns nil
// when nothing matches; callers fall through to another source.
func PickOne(category string, level, preferredMinutes int, history []HistoryEntry, rnd *rand.Rand) *Candidate {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var eligible []Candidate
	for _, t := range seedLibrary {
		if t.Category != category {
			continue
		}
		if abs(t.Level-level) > 1 {
			continue
		}
		if abs(t.Minutes-preferredMinutes) > 5 {
			continue
		}
		eligible = append(eligible, t)
	}
	if len(eligible) == 0 {
		return nil
	}
	pool := avoidRepetition(eligible, history)
	pick := pool[rnd.Intn(len(pool))]
	return &pick
}

// seedLibrary is the hard-coded fallback task set, used when the store path
// yields nothing (new categories, store unavailable, empty result).
var seedLibrary = []Candidate{
	// salud - level 1
	{Kind: KindAccion, Minutes: 5, Text: "Da 300 pasos sin mirar el móvil.", Category: "salud", Level: 1, Tags: []string{"home", "sin_equipo"}},
	{Kind: KindAccion, Minutes: 5, Text: "Haz 10 sentadillas lentas y controladas.", Category: "salud", Level: 1, Tags: []string{"home", "sin_equipo"}},
	{Kind: KindEducacion, Minutes: 5, Text: "Lee la etiqueta nutricional de 1 alimento que comes hoy.", Category: "salud", Level: 1, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 2, Text: "Escribe 1 obstáculo que tuviste hoy para moverte y un plan B.", Category: "salud", Level: 1, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 3, Text: "Bebe un vaso de agua antes de tu próxima comida.", Category: "salud", Level: 1, Tags: []string{"home"}},

	// salud - level 2
	{Kind: KindAccion, Minutes: 10, Text: `8 intervalos de 30" marcha rápida + 30" pausa.`, Category: "salud", Level: 2, Tags: []string{"home", "sin_equipo"}},
	{Kind: KindAccion, Minutes: 10, Text: "3 series de 8 sentadillas + 8 elevaciones de talones.", Category: "salud", Level: 2, Tags: []string{"home", "sin_equipo"}},
	{Kind: KindEducacion, Minutes: 8, Text: "Lee un artículo corto sobre proteínas o hidratos.", Category: "salud", Level: 2, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 3, Text: "¿Qué comida saludable puedes preparar en 10 min?", Category: "salud", Level: 2, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 5, Text: "Prepara una ensalada simple para acompañar tu comida.", Category: "salud", Level: 2, Tags: []string{"home"}},

	// salud - levels 3-5
	{Kind: KindAccion, Minutes: 15, Text: `12 min de caminata rápida con 3 sprints de 20".`, Category: "salud", Level: 3, Tags: []string{"sin_equipo"}},
	{Kind: KindAccion, Minutes: 15, Text: `Circuito: 15 sentadillas + 10 flexiones + 30" plancha, x3.`, Category: "salud", Level: 3, Tags: []string{"home", "sin_equipo"}},
	{Kind: KindEducacion, Minutes: 10, Text: "Mira un vídeo de 10 min sobre macronutrientes.", Category: "salud", Level: 3, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 20, Text: "15 min de cardio + 5 min de estiramientos.", Category: "salud", Level: 4, Tags: []string{"sin_equipo"}},
	{Kind: KindAccion, Minutes: 25, Text: "Rutina completa: calentamiento + fuerza + core + estiramientos.", Category: "salud", Level: 5, Tags: []string{"sin_equipo"}},

	// idioma - level 1
	{Kind: KindEducacion, Minutes: 5, Text: "Aprende 5 palabras nuevas de un tema que te guste.", Category: "idioma", Level: 1, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 5, Text: "Escucha una canción en el idioma y busca 1 palabra.", Category: "idioma", Level: 1, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 2, Text: "Escribe 1 frase sobre tu día usando 1 palabra nueva.", Category: "idioma", Level: 1, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 5, Text: "Mira 5 min de un vídeo infantil en el idioma.", Category: "idioma", Level: 1, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 3, Text: "Lee en voz alta 5 frases de un libro para niños.", Category: "idioma", Level: 1, Tags: []string{"home"}},

	// idioma - level 2
	{Kind: KindEducacion, Minutes: 10, Text: "Completa una lección de gramática básica.", Category: "idioma", Level: 2, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 8, Text: "Shadowing: repite 3-5 min de un vídeo que te guste.", Category: "idioma", Level: 2, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 3, Text: "Escribe 3 frases sobre tu rutina matinal.", Category: "idioma", Level: 2, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 10, Text: "Mira un episodio corto con subtítulos en el idioma.", Category: "idioma", Level: 2, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 10, Text: "Practica pronunciación de 10 palabras difíciles.", Category: "idioma", Level: 2, Tags: []string{"home"}},

	// idioma - levels 3-5
	{Kind: KindAccion, Minutes: 15, Text: "Conversación de 15 min con IA o intercambio.", Category: "idioma", Level: 3, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 15, Text: "Lee un artículo de noticias y resume en 5 frases.", Category: "idioma", Level: 3, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 5, Text: "Escribe un párrafo sobre un tema que te apasione.", Category: "idioma", Level: 3, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 20, Text: "Mira un episodio completo sin subtítulos en tu idioma.", Category: "idioma", Level: 4, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 25, Text: "Lee un capítulo de un libro y toma notas de vocabulario.", Category: "idioma", Level: 5, Tags: []string{"home"}},

	// ahorro - level 1
	{Kind: KindAccion, Minutes: 0, Text: "Evita tu gasto evitable elegido hoy (café, snack, etc).", Category: "ahorro", Level: 1, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 5, Text: "Aparta 3 CHF a tu hucha o cuenta de ahorro.", Category: "ahorro", Level: 1, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 2, Text: "¿Qué gatillo emocional te hizo querer gastar hoy?", Category: "ahorro", Level: 1, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 5, Text: "Lee 1 tip sobre ahorro o finanzas personales.", Category: "ahorro", Level: 1, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 3, Text: "Revisa tus compras de esta semana y marca las innecesarias.", Category: "ahorro", Level: 1, Tags: []string{"home"}},

	// ahorro - levels 2-5
	{Kind: KindAccion, Minutes: 10, Text: "Aparta 5 CHF y anota en qué NO lo gastaste.", Category: "ahorro", Level: 2, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 10, Text: "Mira un vídeo de 10 min sobre presupuesto personal.", Category: "ahorro", Level: 2, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 5, Text: "Calcula cuánto ahorras al mes evitando tu gasto principal.", Category: "ahorro", Level: 2, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 15, Text: "Crea un presupuesto semanal simple en una hoja.", Category: "ahorro", Level: 3, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 15, Text: "Investiga 1 método de inversión o ahorro automático.", Category: "ahorro", Level: 3, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 20, Text: "Configura una transferencia automática de ahorro.", Category: "ahorro", Level: 4, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 10, Text: "Revisa tus gastos del mes y establece metas para el próximo.", Category: "ahorro", Level: 4, Tags: []string{"home"}},

	// enfoque - level 1
	{Kind: KindAccion, Minutes: 10, Text: "1 Pomodoro de 10 min, móvil boca abajo, 1 tarea.", Category: "enfoque", Level: 1, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 5, Text: "Limpia pestañas del navegador, deja máximo 3 abiertas.", Category: "enfoque", Level: 1, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 2, Text: "Escribe cuál es TU distractor principal hoy.", Category: "enfoque", Level: 1, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 5, Text: "Lee 1 artículo corto sobre técnicas de concentración.", Category: "enfoque", Level: 1, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 5, Text: "Silencia notificaciones de apps durante 30 min.", Category: "enfoque", Level: 1, Tags: []string{"home"}},

	// enfoque - levels 2-5
	{Kind: KindAccion, Minutes: 15, Text: "1 Pomodoro de 15 min + 5 min de pausa consciente.", Category: "enfoque", Level: 2, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 10, Text: "Mira un vídeo sobre el método Pomodoro o GTD.", Category: "enfoque", Level: 2, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 5, Text: "Lista las 3 tareas más importantes para mañana.", Category: "enfoque", Level: 2, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 20, Text: "2 Pomodoros seguidos (2x10 min) con descanso entre ellos.", Category: "enfoque", Level: 3, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 15, Text: "Estudia una técnica de productividad y pruébala.", Category: "enfoque", Level: 3, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 25, Text: "Sesión de Deep Work: 25 min sin interrupciones en tu tarea clave.", Category: "enfoque", Level: 4, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 10, Text: "Revisa tu semana: ¿cuántas horas de enfoque real tuviste?", Category: "enfoque", Level: 4, Tags: []string{"home"}},

	// otro - generic pool
	{Kind: KindReflexion, Minutes: 3, Text: "Escribe el micro-paso de hoy hacia tu objetivo (1 frase).", Category: "otro", Level: 1, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 10, Text: "Haz ahora el micro-paso que escribiste.", Category: "otro", Level: 1, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 2, Text: "Anota qué pequeño avance lograste o desbloqueaste hoy.", Category: "otro", Level: 1, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 10, Text: "Lee o mira contenido relacionado con tu objetivo por 10 min.", Category: "otro", Level: 2, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 15, Text: "Dedica 15 min a practicar tu habilidad objetivo.", Category: "otro", Level: 2, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 5, Text: "¿Qué obstáculo te frena? Escribe 2 soluciones posibles.", Category: "otro", Level: 2, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 20, Text: "Sesión práctica: 20 min enfocado en tu objetivo.", Category: "otro", Level: 3, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 15, Text: "Investiga sobre alguien que logró lo que tú buscas.", Category: "otro", Level: 3, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 25, Text: "Bloque de trabajo intenso en tu objetivo principal.", Category: "otro", Level: 4, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 10, Text: "Evalúa tu progreso semanal y ajusta tu estrategia.", Category: "otro", Level: 4, Tags: []string{"home"}},

	// alimentacion - levels 1-3
	{Kind: KindAccion, Minutes: 5, Text: "Añade una ración de verdura a tu próxima comida.", Category: "alimentacion", Level: 1, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 5, Text: "Mira un video de 5 min sobre cómo leer etiquetas de azúcar.", Category: "alimentacion", Level: 1, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 3, Text: "Escribe 1 snack saludable que te guste y tenlo a mano.", Category: "alimentacion", Level: 1, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 10, Text: "Prepara una ensalada rápida con 3 colores distintos.", Category: "alimentacion", Level: 2, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 8, Text: "Lee un artículo corto sobre fibra y por qué sacia.", Category: "alimentacion", Level: 2, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 3, Text: "¿Qué comida del día es tu punto débil? Anota 1 mejora.", Category: "alimentacion", Level: 2, Tags: []string{"home"}},
	{Kind: KindAccion, Minutes: 15, Text: "Batch-prep: lava y corta verduras para 2 comidas.", Category: "alimentacion", Level: 3, Tags: []string{"home"}},
	{Kind: KindEducacion, Minutes: 12, Text: "Aprende 3 proteínas vegetales y 1 forma simple de usarlas.", Category: "alimentacion", Level: 3, Tags: []string{"home"}},
	{Kind: KindReflexion, Minutes: 5, Text: "Revisa tus bebidas hoy y marca 1 sustitución por agua o té.", Category: "alimentacion", Level: 3, Tags: []string{"home"}},
}
