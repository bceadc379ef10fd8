package db

// schedulingDDL garante no banco a regra de "nenhum profissional com dois horários
// sobrepostos": o procedimento de consulta e a constraint de exclusão usam o mesmo
// intervalo semiaberto [inicio, fim) e ignoram agendamentos cancelados.
var schedulingDDL = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,

	`CREATE OR REPLACE FUNCTION verificar_conflito_horario(
        p_profissional_id uuid,
        p_inicio timestamptz,
        p_fim timestamptz,
        p_agendamento_id uuid DEFAULT NULL
    ) RETURNS boolean
    LANGUAGE sql STABLE AS $$
        SELECT EXISTS (
            SELECT 1
            FROM agendamentos a
            WHERE a.profissional_id = p_profissional_id
              AND a.status <> 'cancelado'
              AND (p_agendamento_id IS NULL OR a.id <> p_agendamento_id)
              AND tstzrange(a.data_hora_inicio, a.data_hora_fim, '[)')
                  && tstzrange(p_inicio, p_fim, '[)')
        )
    $$`,

	`DO $$
    BEGIN
        IF NOT EXISTS (
            SELECT 1 FROM pg_constraint WHERE conname = 'agendamentos_sem_sobreposicao'
        ) THEN
            ALTER TABLE agendamentos
            ADD CONSTRAINT agendamentos_sem_sobreposicao
            EXCLUDE USING gist (
                profissional_id WITH =,
                tstzrange(data_hora_inicio, data_hora_fim, '[)') WITH &&
            ) WHERE (status <> 'cancelado');
        END IF;
    END
    $$`,
}
